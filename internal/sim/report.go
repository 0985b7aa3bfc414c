package sim

import (
	"time"

	"github.com/Faultbox/midgard-collide/pkg/math"
)

// Report summarizes a run.
type Report struct {
	Scene     string
	Ticks     int
	Simulated time.Duration
	Actors    []ActorReport
	Beams     []BeamReport
}

// ActorReport is one actor's outcome.
type ActorReport struct {
	Name          string
	Start         math.Vec3 // After spawning onto the ground
	Final         math.Vec3
	OnGround      bool
	AirborneTicks int
	Travelled     float32   // Path length
	Camera        math.Vec3 // Follow-camera eye at the final position
}

// BeamReport is a traced line-of-sight probe.
type BeamReport struct {
	Name     string
	From, To math.Vec3
	End      math.Vec3
	Blocked  bool
}

// SpawnReport is where an actor lands when dropped onto the ground.
type SpawnReport struct {
	Name     string
	Start    math.Vec3
	Position math.Vec3
	OnGround bool
	Terrain  *float32 // Heightfield height under the actor, if any
}
