package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/midgard-collide/pkg/math"
)

// minCos45 is cos(45 degrees).
const minCos45 = 0.70710678

func TestWalkStepsDown(t *testing.T) {
	world := concat(
		floorQuad(0, -5, 1, -5, 5),
		floorQuad(-0.1, 1, 10, -5, 5),
	)
	start := math.Vec3{Y: 0.001}
	target := math.Vec3{X: 3, Y: 0.001}

	got := Walk(start, target, body(), world, minCos45, up)

	assert.InDelta(t, 3, got.X, 1e-4)
	assert.InDelta(t, -0.099, got.Y, 1e-4, "actor should follow the lower floor")
}

func TestWalkFlatGround(t *testing.T) {
	world := floorQuad(0, -10, 10, -10, 10)
	got := Walk(math.Vec3{Y: 0.001}, math.Vec3{X: 2, Y: 0.001, Z: -1}, body(), world, minCos45, up)

	assertVec(t, math.Vec3{X: 2, Y: 0.001, Z: -1}, got, 1e-4)
}

func TestWalkClimbsGentleSlope(t *testing.T) {
	world := concat(floorQuad(0, -10, 2, -10, 10), slopeX(2, 20, 10))

	got := Walk(math.Vec3{Y: 0.001}, math.Vec3{X: 4, Y: 0.001}, body(), world, minCos45, up)

	assert.Greater(t, got.Y, float32(0.5), "actor should ride up the ramp")
	assert.Less(t, got.X, float32(4))
	assert.True(t, TestOnGround(got, body(), world, minCos45, up))
}

func TestWalkSteepSlopeIsWall(t *testing.T) {
	world := concat(floorQuad(0, -10, 2, -10, 10), slopeX(2, 60, 6))
	start := math.Vec3{Y: 0.001}
	target := math.Vec3{X: 3, Y: 0.001}

	walked := Walk(start, target, body(), world, minCos45, up)
	assert.Less(t, walked.X, float32(2))
	assert.Less(t, walked.Y, float32(0.01), "walking must not climb a steep slope")

	// Free movement has no slope limit and slides up the same surface.
	moved := Move(start, target, body(), world)
	assert.Greater(t, moved.Y, float32(0.1))
}

func TestWalkSlidesAlongWallOnFloor(t *testing.T) {
	world := concat(floorQuad(0, -10, 10, -10, 10), wallX(2, -1, 5, -10, 10))

	got := Walk(math.Vec3{Y: 0.001}, math.Vec3{X: 4, Y: 0.001, Z: 4}, body(), world, minCos45, up)

	assertVec(t, math.Vec3{X: 1.499, Y: 0.001, Z: 4}, got, 1e-3)
}

func TestWalkRepeatedlyIntoSteepSlope(t *testing.T) {
	world := concat(floorQuad(0, -10, 2, -10, 10), slopeX(2, 60, 6))
	pos := math.Vec3{Y: 0.001}

	for i := 0; i < 400; i++ {
		pos = Walk(pos, pos.Add(math.Vec3{X: 0.05}), body(), world, minCos45, up)
	}

	assert.Less(t, pos.X, float32(2))
	assert.InDelta(t, 0.001, pos.Y, 1e-4, "pushing into the slope must not lift the actor")
	assert.True(t, TestOnGround(pos, body(), world, minCos45, up))
}

// stepAlongWall is a floor that drops by 0.1 at z=1, bounded by a wall at
// x=2 and another at z=3.
func stepAlongWall() []math.Triangle {
	return concat(
		floorQuad(0, -10, 10, -10, 1),
		floorQuad(-0.1, -10, 10, 1, 10),
		wallX(2, -1, 5, -10, 10),
		wallZ(3, -10, 10, -1, 5),
	)
}

func TestWalkSnapsDownAfterWallContact(t *testing.T) {
	// The slide ends blocked in the corner, so only the snap taken at the
	// wall contact brings the actor down to the lower floor.
	got := Walk(math.Vec3{Y: 0.001}, math.Vec3{X: 4, Y: 0.001, Z: 4}, body(), stepAlongWall(), minCos45, up)

	assertVec(t, math.Vec3{X: 1.499, Y: -0.099, Z: 2.499}, got, 2e-3)
	assert.True(t, TestOnGround(got, body(), stepAlongWall(), minCos45, up))
}

func TestWalkWallSnapsLimitedByIterations(t *testing.T) {
	tol := DefaultTolerances()
	tol.MaxIterations = 1
	r := NewResolver(tol)

	got := r.Walk(math.Vec3{Y: 0.001}, math.Vec3{X: 4, Y: 0.001, Z: 4}, body(), stepAlongWall(), minCos45, up)

	// One snap is taken, then the corner uses up the last iteration before
	// the descent completes.
	assert.InDelta(t, 1.499, got.X, 2e-3)
	assert.InDelta(t, 2.499, got.Z, 2e-3)
	assert.Less(t, got.Y, float32(0.001))
	assert.Greater(t, got.Y, float32(-0.099))
}

func TestWalkCornerTerminates(t *testing.T) {
	world := concat(
		floorQuad(0, -10, 10, -10, 10),
		wallX(2, -1, 5, -10, 10),
		wallZ(2, -10, 10, -1, 5),
	)

	got := Walk(math.Vec3{Y: 0.001}, math.Vec3{X: 4, Y: 0.001, Z: 4}, body(), world, minCos45, up)

	assertVec(t, math.Vec3{X: 1.499, Y: 0.001, Z: 1.499}, got, 2e-3)
}

func TestFlatten(t *testing.T) {
	n := math.Vec3{X: -0.866, Y: 0.5}
	got := flatten(n, up)
	assertVec(t, math.Vec3{X: -1}, got, 1e-6)

	assert.True(t, flatten(math.Vec3{Y: -1}, up).IsZero(), "ceilings cannot be flattened")
}
