package collision

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/midgard-collide/pkg/math"
)

// SphereCollider is a sphere whose center sits at Offset from the actor's
// reference point. A zero radius behaves as a point.
type SphereCollider struct {
	Offset math.Vec3
	Radius float32
}

// HitsTriangle implements Collider.
func (s SphereCollider) HitsTriangle(tri math.Triangle, pos, movement math.Vec3) (Contact, bool) {
	plane := tri.Plane()
	if !plane.Valid() {
		return Contact{}, false
	}

	center := pos.Add(s.Offset)
	dist := plane.Distance(center)

	// Normal of the face the sphere is on.
	side := plane.N
	if dist < 0 {
		side = side.Negate()
	}

	// Already resting in the plane: contact at the projected center.
	if math32.Abs(dist) < s.Radius*overlapTolerance {
		onPlane := center.Sub(plane.N.Scale(dist))
		if tri.Contains(onPlane, insideEpsilon) {
			return s.contactAt(center, onPlane, side), true
		}

		edge := tri.ClosestEdgePoint(onPlane)
		toCenter := center.Sub(edge)
		if toCenter.LengthSq() < s.Radius*s.Radius {
			n := toCenter.Normalize()
			if n.IsZero() {
				n = side
			}
			return s.contactAt(center, edge, n), true
		}
		return s.sweepToPoint(center, movement, edge)
	}

	closest := center.Sub(side.Scale(s.Radius))
	if movement.Dot(side) >= 0 {
		return Contact{}, false
	}

	t, ok := plane.IntersectLine(closest, movement)
	if !ok {
		return Contact{}, false
	}
	if t < -s.Radius/movement.Length() || t > 1 {
		return Contact{}, false
	}

	onPlane := closest.Add(movement.Scale(t))
	if tri.Contains(onPlane, insideEpsilon) {
		return Contact{Closest: closest, Point: onPlane, Normal: side}, true
	}
	return s.sweepToPoint(center, movement, tri.ClosestEdgePoint(onPlane))
}

func (s SphereCollider) contactAt(center, point, normal math.Vec3) Contact {
	return Contact{
		Closest: center.Sub(normal.Scale(s.Radius)),
		Point:   point,
		Normal:  normal,
	}
}

// sweepToPoint finds when the sphere moving from center along movement first
// touches p, solving |center + t*movement - p| = radius.
func (s SphereCollider) sweepToPoint(center, movement, p math.Vec3) (Contact, bool) {
	a := movement.LengthSq()
	if a == 0 {
		return Contact{}, false
	}
	w := center.Sub(p)
	b := 2 * w.Dot(movement)
	c := w.LengthSq() - s.Radius*s.Radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return Contact{}, false
	}
	root := math32.Sqrt(disc)
	t1 := (-b - root) / (2 * a)
	t2 := (-b + root) / (2 * a)

	// Closest approach already behind us, or the point is out of reach.
	if t2 < 0 || t1 > 1 {
		return Contact{}, false
	}

	n := center.Add(movement.Scale(t1)).Sub(p).Normalize()
	if n.IsZero() {
		return Contact{}, false
	}
	return s.contactAt(center, p, n), true
}
