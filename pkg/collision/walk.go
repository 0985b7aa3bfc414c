package collision

import "github.com/Faultbox/midgard-collide/pkg/math"

// Walk moves a grounded actor from start toward target. Surfaces whose normal
// makes a cosine with up below minCosine are walls: they are slid along as if
// vertical, and after touching one the actor is snapped back down onto the
// ground. When the movement completes the actor is snapped onto the floor
// below the end point if that floor is closer than the step just taken, which
// keeps it glued to slopes and lets it step down small ledges.
func (r *Resolver) Walk(start, target math.Vec3, colliders []Collider, tris []math.Triangle, minCosine float32, up math.Vec3) math.Vec3 {
	pos := start
	goal := target
	requested := target.Sub(start)

	// Ground snaps after wall contacts do not use up iterations, but they
	// are limited to the same count so the loop always ends.
	spare := r.tol.MaxIterations

	for i := 0; i < r.tol.MaxIterations; i++ {
		movement := goal.Sub(pos)
		if movement.LengthSq() < r.tol.Convergence {
			return goal
		}

		hit, ok := nearestContact(pos, movement, colliders, tris)
		if !ok {
			return r.settle(goal, movement.Length(), colliders, tris, minCosine, up)
		}

		normal := hit.Normal
		wall := isWall(normal, up, minCosine)
		if wall {
			if flat := flatten(normal, up); !flat.IsZero() {
				normal = flat
			}
		}

		// Backing off along the tilted normal of a steep slope would lift
		// the actor a little on every contact.
		pos = r.pushOut(pos, hit, normal)
		slide := slideAlong(hit, normal, movement)
		if slide.Dot(requested) < 0 {
			slide = math.Vec3{}
		}

		if wall && spare > 0 {
			if ground, found := r.dropToGround(pos, colliders, tris, minCosine, up); found {
				snap := ground.Sub(pos)
				if snap.LengthSq() < slide.LengthSq() {
					slide = slide.Add(snap)
					spare--
					i--
				}
			}
		}
		goal = pos.Add(slide)
	}
	return pos
}

// settle snaps an unobstructed end point onto the floor beneath it when the
// floor is within reach of the step just taken.
func (r *Resolver) settle(goal math.Vec3, reach float32, colliders []Collider, tris []math.Triangle, minCosine float32, up math.Vec3) math.Vec3 {
	ground, found := r.dropToGround(goal, colliders, tris, minCosine, up)
	if found && ground.Sub(goal).LengthSq() < reach*reach {
		return ground
	}
	return goal
}

// isWall reports whether a surface with the given normal is too steep to
// stand on. A cosine exactly at the threshold is a floor.
func isWall(normal, up math.Vec3, minCosine float32) bool {
	return normal.Dot(up) < minCosine
}

// flatten removes the up component of normal, turning a steep slope into a
// vertical wall. Normals parallel to up flatten to zero.
func flatten(normal, up math.Vec3) math.Vec3 {
	return normal.Sub(up.Scale(normal.Dot(up))).Normalize()
}
