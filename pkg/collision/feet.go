package collision

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/midgard-collide/pkg/math"
)

// FeetCollider is a probe segment from the actor's reference point to
// Offset, usually pointing down to where the feet touch the ground.
type FeetCollider struct {
	Offset math.Vec3
}

// HitsTriangle implements Collider. The contact normal is the triangle's own
// face normal, regardless of which side the probe approaches from.
func (f FeetCollider) HitsTriangle(tri math.Triangle, pos, movement math.Vec3) (Contact, bool) {
	plane := tri.Plane()
	if !plane.Valid() {
		return Contact{}, false
	}
	if math32.Abs(plane.N.Dot(f.Offset.Normalize())) < probeParallelCosine {
		return Contact{}, false
	}

	feet := pos.Add(f.Offset)
	headDist := plane.Distance(pos)
	feetDist := plane.Distance(feet)

	var point math.Vec3
	if headDist*feetDist <= 0 {
		// The probe already crosses the plane.
		t := headDist / (headDist - feetDist)
		point = pos.Add(f.Offset.Scale(t))
	} else {
		approach := plane.N.Dot(movement)
		if feetDist*approach >= 0 {
			return Contact{}, false
		}
		t := -feetDist / approach
		if t < 0 || t > 1 {
			return Contact{}, false
		}
		point = feet.Add(movement.Scale(t))
	}

	if !tri.Contains(point, insideEpsilon) {
		return Contact{}, false
	}
	return Contact{Closest: feet, Point: point, Normal: plane.N}, true
}
