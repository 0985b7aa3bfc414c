// Package collision moves sphere- and probe-shaped actors through a static
// triangle world. It detects contacts, slides along surfaces, classifies
// floors and walls by slope, snaps actors onto the ground and shortens line
// segments at the first surface they cross.
//
// Every function is pure: triangle and collider slices are borrowed for the
// duration of a call and never modified, so independent actors can be
// resolved from different goroutines against the same triangle slice.
package collision

import "github.com/Faultbox/midgard-collide/pkg/math"

const (
	// overlapTolerance scales the radius when deciding that a sphere already
	// rests in a plane, absorbing float noise at exact contact.
	overlapTolerance = 0.9999

	// insideEpsilon loosens the inside-triangle test so contacts on shared
	// edges are not lost between neighbouring triangles.
	insideEpsilon = 1e-5

	// probeParallelCosine rejects planes the feet probe runs alongside.
	probeParallelCosine = 1e-4
)

// Contact describes where a collider first touches a triangle.
type Contact struct {
	// Closest is the point on the collider, at the actor's current position,
	// that touches the triangle first.
	Closest math.Vec3
	// Point is the touch point on the triangle.
	Point math.Vec3
	// Normal is the unit contact normal pointing from the triangle toward
	// the collider.
	Normal math.Vec3
}

// Free returns the displacement the actor can travel before touching.
func (c Contact) Free() math.Vec3 {
	return c.Point.Sub(c.Closest)
}

// Collider is a shape attached to an actor's reference point.
type Collider interface {
	// HitsTriangle reports whether the collider, moved from pos by
	// movement, touches tri, and where.
	HitsTriangle(tri math.Triangle, pos, movement math.Vec3) (Contact, bool)
}

// nearestContact tests every triangle against every collider and returns the
// contact with the shortest free displacement. Ties keep the first found.
func nearestContact(pos, movement math.Vec3, colliders []Collider, tris []math.Triangle) (Contact, bool) {
	var best Contact
	bestSq := float32(0)
	found := false

	for i := range tris {
		for _, c := range colliders {
			hit, ok := c.HitsTriangle(tris[i], pos, movement)
			if !ok {
				continue
			}
			d := hit.Free().LengthSq()
			if !found || d < bestSq {
				best, bestSq, found = hit, d, true
			}
		}
	}
	return best, found
}
