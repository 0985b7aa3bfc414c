package collision

import "github.com/Faultbox/midgard-collide/pkg/math"

// Move slides the actor from start toward target. At each contact the actor
// stops just short of the surface and the rest of the movement is projected
// onto the contact plane. If the loop does not settle within MaxIterations
// the actor stays at the last safe position.
func (r *Resolver) Move(start, target math.Vec3, colliders []Collider, tris []math.Triangle) math.Vec3 {
	pos := start
	goal := target
	requested := target.Sub(start)

	for i := 0; i < r.tol.MaxIterations; i++ {
		movement := goal.Sub(pos)
		if movement.LengthSq() < r.tol.Convergence {
			return goal
		}

		hit, ok := nearestContact(pos, movement, colliders, tris)
		if !ok {
			return goal
		}

		pos = r.pushOut(pos, hit, hit.Normal)
		slide := slideAlong(hit, hit.Normal, movement)
		if slide.Dot(requested) < 0 {
			slide = math.Vec3{}
		}
		goal = pos.Add(slide)
	}
	return pos
}

// pushOut advances pos to the contact and backs it off along normal by the
// wall clearance.
func (r *Resolver) pushOut(pos math.Vec3, hit Contact, normal math.Vec3) math.Vec3 {
	return pos.Add(hit.Free()).Add(normal.Scale(r.tol.MinWallDistance))
}

// slideAlong returns what is left of movement after it is blocked at hit:
// the unobstructed end point projected onto the plane through the contact
// with the given normal, relative to the contact.
func slideAlong(hit Contact, normal, movement math.Vec3) math.Vec3 {
	plane := math.NewPlane(normal, hit.Point)
	unobstructed := hit.Closest.Add(movement)
	return plane.Project(unobstructed).Sub(hit.Point)
}
