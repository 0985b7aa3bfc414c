// Package actor drives a single actor through a static world: walking on
// floors, jumping, falling under gravity and landing.
package actor

import (
	"github.com/Faultbox/midgard-collide/pkg/collision"
	"github.com/Faultbox/midgard-collide/pkg/math"
)

// State is the movement state the caller keeps between steps.
type State struct {
	Position      math.Vec3
	VerticalSpeed float32 // Along the up axis, positive is rising
	OnGround      bool
}

// Input is what the actor wants this step.
type Input struct {
	Move math.Vec3 // Desired direction; only its horizontal part is used
	Jump bool
}

// Params configures a controller.
type Params struct {
	Up        math.Vec3
	MinCosine float32
	Gravity   float32
	MoveSpeed float32
	JumpSpeed float32
}

// Controller steps one actor. It holds no per-step state, so one controller
// can be reused for many steps; it is not tied to a goroutine.
type Controller struct {
	resolver  *collision.Resolver
	tris      []math.Triangle
	colliders []collision.Collider
	params    Params
}

// NewController binds an actor's colliders to a world.
func NewController(resolver *collision.Resolver, tris []math.Triangle, colliders []collision.Collider, params Params) *Controller {
	params.Up = params.Up.Normalize()
	return &Controller{
		resolver:  resolver,
		tris:      tris,
		colliders: colliders,
		params:    params,
	}
}

// Spawn places an actor on the floor below pos. Without a floor the actor
// starts in the air at pos.
func (c *Controller) Spawn(pos math.Vec3) State {
	p := c.params
	pos = c.resolver.PutOnGround(pos, c.colliders, c.tris, p.MinCosine, p.Up)
	return State{
		Position: pos,
		OnGround: c.resolver.TestOnGround(pos, c.colliders, c.tris, p.MinCosine, p.Up),
	}
}

// Step advances s by dt seconds.
func (c *Controller) Step(s State, in Input, dt float32) State {
	p := c.params
	step := c.horizontal(in.Move).Scale(p.MoveSpeed * dt)

	if s.OnGround && in.Jump && p.JumpSpeed > 0 {
		s.OnGround = false
		s.VerticalSpeed = p.JumpSpeed
	}

	if s.OnGround {
		s.Position = c.resolver.Walk(s.Position, s.Position.Add(step), c.colliders, c.tris, p.MinCosine, p.Up)
		s.OnGround = c.resolver.TestOnGround(s.Position, c.colliders, c.tris, p.MinCosine, p.Up)
		s.VerticalSpeed = 0
		return s
	}

	s.VerticalSpeed -= p.Gravity * dt
	rise := s.VerticalSpeed * dt
	start := s.Position
	s.Position = c.resolver.Move(start, start.Add(step).Add(p.Up.Scale(rise)), c.colliders, c.tris)

	climbed := s.Position.Sub(start).Dot(p.Up)
	switch {
	case rise > 0 && climbed < rise/2:
		// Hit a ceiling
		s.VerticalSpeed = 0
	case s.VerticalSpeed <= 0 && c.resolver.TestOnGround(s.Position, c.colliders, c.tris, p.MinCosine, p.Up):
		s.OnGround = true
		s.VerticalSpeed = 0
	}
	return s
}

// horizontal drops the up component of dir and normalizes the rest.
func (c *Controller) horizontal(dir math.Vec3) math.Vec3 {
	up := c.params.Up
	return dir.Sub(up.Scale(dir.Dot(up))).Normalize()
}
