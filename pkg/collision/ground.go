package collision

import "github.com/Faultbox/midgard-collide/pkg/math"

// floor is a triangle turned to face up together with its slope cosine.
type floor struct {
	tri    math.Triangle
	plane  math.Plane
	cosine float32
}

// asFloor orients tri toward up and reports whether it is flat enough to
// stand on. Winding does not matter here: a floor is a floor from either
// side as long as its slope is below the limit.
func asFloor(tri math.Triangle, minCosine float32, up math.Vec3) (floor, bool) {
	plane := tri.Plane()
	if !plane.Valid() {
		return floor{}, false
	}
	if plane.N.Dot(up) < 0 {
		tri = tri.Flipped()
		plane = plane.Flip()
	}
	cosine := plane.N.Dot(up)
	if isWall(plane.N, up, minCosine) || cosine <= 0 {
		return floor{}, false
	}
	return floor{tri: tri, plane: plane, cosine: cosine}, true
}

// TestOnGround reports whether any collider rests on a floor triangle, that
// is, whether a short probe along -up touches a floor within the ground
// probe distance.
func (r *Resolver) TestOnGround(pos math.Vec3, colliders []Collider, tris []math.Triangle, minCosine float32, up math.Vec3) bool {
	down := up.Negate()
	limit := r.tol.GroundProbeFactor * r.tol.MinWallDistance

	for i := range tris {
		f, ok := asFloor(tris[i], minCosine, up)
		if !ok {
			continue
		}
		for _, c := range colliders {
			hit, ok := c.HitsTriangle(f.tri, pos, down)
			if !ok {
				continue
			}
			if f.plane.Distance(hit.Closest) <= limit {
				return true
			}
		}
	}
	return false
}

// PutOnGround moves the actor straight down onto the nearest floor beneath
// it, leaving the wall clearance between collider and floor. Without a floor
// below, pos is returned unchanged.
func (r *Resolver) PutOnGround(pos math.Vec3, colliders []Collider, tris []math.Triangle, minCosine float32, up math.Vec3) math.Vec3 {
	ground, _ := r.dropToGround(pos, colliders, tris, minCosine, up)
	return ground
}

func (r *Resolver) dropToGround(pos math.Vec3, colliders []Collider, tris []math.Triangle, minCosine float32, up math.Vec3) (math.Vec3, bool) {
	cast := up.Negate().Scale(r.tol.GroundCastDistance)

	var (
		best   math.Vec3
		bestSq float32
		cosine float32
		found  bool
	)
	for i := range tris {
		f, ok := asFloor(tris[i], minCosine, up)
		if !ok {
			continue
		}
		for _, c := range colliders {
			hit, ok := c.HitsTriangle(f.tri, pos, cast)
			if !ok {
				continue
			}
			d := hit.Free()
			if dSq := d.LengthSq(); !found || dSq < bestSq {
				best, bestSq, cosine, found = d, dSq, f.cosine, true
			}
		}
	}
	if !found {
		return pos, false
	}

	// A sloped floor needs more vertical room than a flat one to keep the
	// same clearance along its normal.
	lift := r.tol.MinWallDistance / cosine
	return pos.Add(best).Add(up.Scale(lift)), true
}
