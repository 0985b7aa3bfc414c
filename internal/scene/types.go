// Package scene loads static collision worlds and the actors that move
// through them from YAML files.
package scene

import (
	"time"

	"github.com/chewxy/math32"

	"github.com/Faultbox/midgard-collide/pkg/collision"
	"github.com/Faultbox/midgard-collide/pkg/math"
)

// File is the on-disk scene document.
type File struct {
	Name   string     `yaml:"name"`
	Shapes []ShapeDef `yaml:"shapes"`
	Actors []ActorDef `yaml:"actors"`
	Beams  []BeamDef  `yaml:"beams"`
}

// ShapeDef describes one piece of static geometry.
//
// Kinds:
//   - triangle: three points
//   - quad: four points, split along the first diagonal
//   - box: size gives full extents, centered on the origin
//   - ramp: size gives width (X), height (Y) and length (Z); rises along +Z
//   - heightfield: a grid of heights, rows along Z and columns along X
type ShapeDef struct {
	Name        string          `yaml:"name"`
	Kind        string          `yaml:"kind"`
	Points      [][3]float32    `yaml:"points"`
	Size        [3]float32      `yaml:"size"`
	Heightfield *HeightfieldDef `yaml:"heightfield"`
	Transform   TransformDef    `yaml:"transform"`
}

// TransformDef places a shape. Scale is applied first, then rotation, then
// translation. A zero scale component means 1.
type TransformDef struct {
	Translate [3]float32 `yaml:"translate"`
	Axis      [3]float32 `yaml:"axis"`
	Degrees   float32    `yaml:"degrees"`
	Scale     [3]float32 `yaml:"scale"`
}

// HeightfieldDef is a regular grid of heights.
type HeightfieldDef struct {
	CellSize float32     `yaml:"cell_size"`
	Heights  [][]float32 `yaml:"heights"`
}

// ActorDef describes a moving actor.
type ActorDef struct {
	Name      string        `yaml:"name"`
	Position  [3]float32    `yaml:"position"`
	MoveSpeed float32       `yaml:"move_speed"`
	JumpSpeed float32       `yaml:"jump_speed"`
	CameraYaw float32       `yaml:"camera_yaw"` // Degrees
	Colliders []ColliderDef `yaml:"colliders"`
	Script    []InputDef    `yaml:"script"`
}

// ColliderDef is a sphere or a feet probe attached to an actor.
type ColliderDef struct {
	Kind   string     `yaml:"kind"` // sphere or feet
	Offset [3]float32 `yaml:"offset"`
	Radius float32    `yaml:"radius"`
}

// InputDef changes an actor's input from time At onward.
type InputDef struct {
	At   time.Duration `yaml:"at"`
	Move [3]float32    `yaml:"move"`
	Jump bool          `yaml:"jump"`
}

// BeamDef is a named line-of-sight probe.
type BeamDef struct {
	Name string     `yaml:"name"`
	From [3]float32 `yaml:"from"`
	To   [3]float32 `yaml:"to"`
}

// Scene is a built world ready for collision queries.
type Scene struct {
	Name         string
	Triangles    []math.Triangle
	Heightfields []*Heightfield
	Actors       []Actor
	Beams        []Beam
}

// Bounds returns the axis-aligned box around every triangle in the scene.
// An empty scene has zero bounds.
func (s *Scene) Bounds() (min, max math.Vec3) {
	for i, tri := range s.Triangles {
		lo, hi := tri.Bounds()
		if i == 0 {
			min, max = lo, hi
			continue
		}
		min = math.Vec3{X: math32.Min(min.X, lo.X), Y: math32.Min(min.Y, lo.Y), Z: math32.Min(min.Z, lo.Z)}
		max = math.Vec3{X: math32.Max(max.X, hi.X), Y: math32.Max(max.Y, hi.Y), Z: math32.Max(max.Z, hi.Z)}
	}
	return min, max
}

// Actor is an actor's starting state and scripted input.
type Actor struct {
	Name      string
	Position  math.Vec3
	MoveSpeed float32
	JumpSpeed float32
	CameraYaw float32 // Radians
	Colliders []collision.Collider
	Script    []Input
}

// Input is what an actor wants to do: walk along Move (a direction, scaled
// by the actor's speed) and optionally jump.
type Input struct {
	At   time.Duration
	Move math.Vec3
	Jump bool
}

// InputAt returns the input in effect at time t. Script entries are sorted
// by At; before the first one the actor stands still.
func (a *Actor) InputAt(t time.Duration) Input {
	var in Input
	for _, s := range a.Script {
		if s.At > t {
			break
		}
		in = s
	}
	return in
}

// Beam is a built line-of-sight probe.
type Beam struct {
	Name     string
	From, To math.Vec3
}
