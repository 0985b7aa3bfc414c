package collision

import "github.com/Faultbox/midgard-collide/pkg/math"

// TraceBeam returns the first point where the segment from p1 to p2 crosses
// a triangle, or p2 when nothing is in the way. Coincident endpoints return
// p1. Triangles are hit from either side.
func TraceBeam(p1, p2 math.Vec3, tris []math.Triangle) math.Vec3 {
	beam := p2.Sub(p1)
	if beam.IsZero() {
		return p1
	}

	best := beam
	bestSq := beam.LengthSq()
	hit := false

	for i := range tris {
		plane := tris[i].Plane()
		if !plane.Valid() {
			continue
		}
		t, ok := plane.IntersectLine(p1, beam)
		if !ok {
			continue
		}
		point := p1.Add(beam.Scale(t))
		if !tris[i].Contains(point, insideEpsilon) {
			continue
		}
		d := point.Sub(p1)
		if dSq := d.LengthSq(); dSq < bestSq && d.Dot(beam) > 0 {
			best, bestSq, hit = d, dSq, true
		}
	}

	if !hit {
		return p2
	}
	return p1.Add(best)
}
