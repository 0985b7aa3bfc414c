package collision

import "github.com/Faultbox/midgard-collide/pkg/math"

// Tolerances holds the tunable epsilons of the solver. They are tuned for
// world units of roughly one meter; rescale them for other world scales.
type Tolerances struct {
	// MinWallDistance is the clearance kept between colliders and surfaces.
	MinWallDistance float32
	// Convergence is the squared movement length below which a solve stops.
	Convergence float32
	// MaxIterations caps the contact/slide loop.
	MaxIterations int
	// GroundProbeFactor multiplies MinWallDistance to get the largest gap
	// that still counts as standing on the ground.
	GroundProbeFactor float32
	// GroundCastDistance is how far PutOnGround searches below the actor.
	GroundCastDistance float32
}

// DefaultTolerances returns the stock solver settings.
func DefaultTolerances() Tolerances {
	return Tolerances{
		MinWallDistance:    1e-3,
		Convergence:        1e-8,
		MaxIterations:      10,
		GroundProbeFactor:  2,
		GroundCastDistance: 1e4,
	}
}

// Resolver runs collision queries with a fixed set of tolerances. The zero
// value is not usable; build one with NewResolver.
type Resolver struct {
	tol Tolerances
}

// NewResolver returns a resolver using tol.
func NewResolver(tol Tolerances) *Resolver {
	return &Resolver{tol: tol}
}

// Tolerances returns the resolver's settings.
func (r *Resolver) Tolerances() Tolerances {
	return r.tol
}

var defaultResolver = NewResolver(DefaultTolerances())

// Move slides the actor from start toward target using default tolerances.
func Move(start, target math.Vec3, colliders []Collider, tris []math.Triangle) math.Vec3 {
	return defaultResolver.Move(start, target, colliders, tris)
}

// Walk moves a grounded actor from start toward target using default
// tolerances.
func Walk(start, target math.Vec3, colliders []Collider, tris []math.Triangle, minCosine float32, up math.Vec3) math.Vec3 {
	return defaultResolver.Walk(start, target, colliders, tris, minCosine, up)
}

// TestOnGround reports whether the actor rests on a floor, using default
// tolerances.
func TestOnGround(pos math.Vec3, colliders []Collider, tris []math.Triangle, minCosine float32, up math.Vec3) bool {
	return defaultResolver.TestOnGround(pos, colliders, tris, minCosine, up)
}

// PutOnGround drops the actor onto the floor below it, using default
// tolerances.
func PutOnGround(pos math.Vec3, colliders []Collider, tris []math.Triangle, minCosine float32, up math.Vec3) math.Vec3 {
	return defaultResolver.PutOnGround(pos, colliders, tris, minCosine, up)
}
