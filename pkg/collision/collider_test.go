package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/midgard-collide/pkg/math"
)

func unitFloorTri() math.Triangle {
	return math.Tri(math.Vec3{}, math.Vec3{Z: 1}, math.Vec3{X: 1})
}

func assertVec(t *testing.T, want, got math.Vec3, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "x of %v", got)
	assert.InDelta(t, want.Y, got.Y, delta, "y of %v", got)
	assert.InDelta(t, want.Z, got.Z, delta, "z of %v", got)
}

func TestSphereFaceHit(t *testing.T) {
	s := SphereCollider{Radius: 0.5}
	hit, ok := s.HitsTriangle(unitFloorTri(), math.Vec3{X: 0.2, Y: 1, Z: 0.2}, math.Vec3{Y: -2})
	require.True(t, ok)

	assertVec(t, math.Vec3{X: 0.2, Y: 0.5, Z: 0.2}, hit.Closest, 1e-6)
	assertVec(t, math.Vec3{X: 0.2, Z: 0.2}, hit.Point, 1e-6)
	assertVec(t, math.Vec3{Y: 1}, hit.Normal, 1e-6)
}

func TestPointSphereFaceHit(t *testing.T) {
	s := SphereCollider{}
	hit, ok := s.HitsTriangle(unitFloorTri(), math.Vec3{X: 0.2, Y: 1, Z: 0.2}, math.Vec3{Y: -2})
	require.True(t, ok)

	assertVec(t, math.Vec3{X: 0.2, Y: 1, Z: 0.2}, hit.Closest, 1e-6)
	assertVec(t, math.Vec3{X: 0.2, Z: 0.2}, hit.Point, 1e-6)
	assertVec(t, math.Vec3{Y: 1}, hit.Normal, 1e-6)

	_, ok = s.HitsTriangle(unitFloorTri(), math.Vec3{X: 0.2, Y: 1, Z: 0.2}, math.Vec3{Y: 2})
	assert.False(t, ok, "moving away from the face")
}

func TestSphereEdgeHit(t *testing.T) {
	s := SphereCollider{Radius: 0.5}
	// Falls just beside the x=0 edge; the edge catches the sphere's side.
	hit, ok := s.HitsTriangle(unitFloorTri(), math.Vec3{X: -0.3, Y: 1, Z: 0.5}, math.Vec3{Y: -2})
	require.True(t, ok)

	assertVec(t, math.Vec3{Z: 0.5}, hit.Point, 1e-5)
	assertVec(t, math.Vec3{X: -0.6, Y: 0.8}, hit.Normal, 1e-5)
	assertVec(t, math.Vec3{Y: -0.6}, hit.Free(), 1e-5)
}

func TestSphereEdgeMiss(t *testing.T) {
	s := SphereCollider{Radius: 0.5}
	_, ok := s.HitsTriangle(unitFloorTri(), math.Vec3{X: -0.6, Y: 1, Z: 0.5}, math.Vec3{Y: -2})
	assert.False(t, ok)
}

func TestSphereMovingAway(t *testing.T) {
	s := SphereCollider{Radius: 0.5}
	_, ok := s.HitsTriangle(unitFloorTri(), math.Vec3{X: 0.2, Y: 1, Z: 0.2}, math.Vec3{Y: 1})
	assert.False(t, ok)
}

func TestSphereOutOfReach(t *testing.T) {
	s := SphereCollider{Radius: 0.5}
	_, ok := s.HitsTriangle(unitFloorTri(), math.Vec3{X: 0.2, Y: 5, Z: 0.2}, math.Vec3{Y: -2})
	assert.False(t, ok)
}

func TestSphereOverlapPushesOut(t *testing.T) {
	s := SphereCollider{Radius: 0.5}
	hit, ok := s.HitsTriangle(unitFloorTri(), math.Vec3{X: 0.2, Y: 0.3, Z: 0.2}, math.Vec3{X: 1})
	require.True(t, ok)

	assertVec(t, math.Vec3{Y: 1}, hit.Normal, 1e-6)
	assertVec(t, math.Vec3{Y: 0.2}, hit.Free(), 1e-6)
}

func TestSphereDegenerateTriangle(t *testing.T) {
	s := SphereCollider{Radius: 0.5}
	tri := math.Tri(math.Vec3{}, math.Vec3{X: 1}, math.Vec3{X: 2})
	_, ok := s.HitsTriangle(tri, math.Vec3{Y: 0.1}, math.Vec3{Y: -1})
	assert.False(t, ok)
}

func bigFloorTri() math.Triangle {
	return math.Tri(math.Vec3{X: -5, Z: -5}, math.Vec3{X: -5, Z: 15}, math.Vec3{X: 15, Z: -5})
}

func TestFeetStraddle(t *testing.T) {
	f := FeetCollider{Offset: math.Vec3{Y: -1}}
	hit, ok := f.HitsTriangle(bigFloorTri(), math.Vec3{Y: 0.5}, math.Vec3{})
	require.True(t, ok)

	assertVec(t, math.Vec3{}, hit.Point, 1e-6)
	assertVec(t, math.Vec3{Y: -0.5}, hit.Closest, 1e-6)
	assertVec(t, math.Vec3{Y: 1}, hit.Normal, 1e-6)
}

func TestFeetApproach(t *testing.T) {
	f := FeetCollider{Offset: math.Vec3{Y: -1}}
	hit, ok := f.HitsTriangle(bigFloorTri(), math.Vec3{Y: 2}, math.Vec3{Y: -2})
	require.True(t, ok)
	assertVec(t, math.Vec3{}, hit.Point, 1e-6)
	assertVec(t, math.Vec3{Y: 1}, hit.Closest, 1e-6)

	_, ok = f.HitsTriangle(bigFloorTri(), math.Vec3{Y: 2}, math.Vec3{X: 1})
	assert.False(t, ok, "sideways movement never reaches the floor")

	_, ok = f.HitsTriangle(bigFloorTri(), math.Vec3{Y: 5}, math.Vec3{Y: -2})
	assert.False(t, ok, "floor is out of reach this step")
}

func TestFeetIgnoresParallelWalls(t *testing.T) {
	f := FeetCollider{Offset: math.Vec3{Y: -1}}
	for _, tri := range wallX(0, -5, 5, -5, 5) {
		_, ok := f.HitsTriangle(tri, math.Vec3{X: -0.0001}, math.Vec3{X: 1})
		assert.False(t, ok)
	}
}

func TestFeetOutsideTriangle(t *testing.T) {
	f := FeetCollider{Offset: math.Vec3{Y: -1}}
	_, ok := f.HitsTriangle(bigFloorTri(), math.Vec3{X: 20, Y: 0.5}, math.Vec3{})
	assert.False(t, ok)
}
