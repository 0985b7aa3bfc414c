package math

// Triangle is three ordered points. Counter-clockwise winding seen from the
// front gives a normal pointing out of the front face.
type Triangle struct {
	P [3]Vec3
}

// Tri builds a triangle from three points.
func Tri(p0, p1, p2 Vec3) Triangle {
	return Triangle{P: [3]Vec3{p0, p1, p2}}
}

// Normal returns the unit face normal, or the zero vector for degenerate
// triangles.
func (t Triangle) Normal() Vec3 {
	return t.P[1].Sub(t.P[0]).Cross(t.P[2].Sub(t.P[0])).Normalize()
}

// Plane returns the supporting plane. Degenerate triangles yield a plane
// with a zero normal; check Valid before using it.
func (t Triangle) Plane() Plane {
	n := t.Normal()
	return Plane{N: n, D: -t.P[0].Dot(n)}
}

// Degenerate reports whether the triangle has no area.
func (t Triangle) Degenerate() bool {
	return t.Normal().IsZero()
}

// Flipped returns the triangle with reversed winding.
func (t Triangle) Flipped() Triangle {
	return Triangle{P: [3]Vec3{t.P[0], t.P[2], t.P[1]}}
}

// Contains reports whether p, assumed to lie on the triangle's plane, is
// inside the triangle. eps loosens each edge test so points on the boundary
// count as inside.
func (t Triangle) Contains(p Vec3, eps float32) bool {
	n := t.P[1].Sub(t.P[0]).Cross(t.P[2].Sub(t.P[0]))
	for i := 0; i < 3; i++ {
		a := t.P[i]
		b := t.P[(i+1)%3]
		if b.Sub(a).Cross(p.Sub(a)).Dot(n) < -eps*n.LengthSq() {
			return false
		}
	}
	return true
}

// ClosestEdgePoint returns the point on the triangle's boundary nearest p.
func (t Triangle) ClosestEdgePoint(p Vec3) Vec3 {
	best := ClosestPointOnSegment(t.P[0], t.P[1], p)
	bestSq := best.Sub(p).LengthSq()
	for i := 1; i < 3; i++ {
		c := ClosestPointOnSegment(t.P[i], t.P[(i+1)%3], p)
		if d := c.Sub(p).LengthSq(); d < bestSq {
			best, bestSq = c, d
		}
	}
	return best
}

// Bounds returns the axis-aligned box around the triangle.
func (t Triangle) Bounds() (min, max Vec3) {
	min, max = t.P[0], t.P[0]
	for _, p := range t.P[1:] {
		min = Vec3{minf(min.X, p.X), minf(min.Y, p.Y), minf(min.Z, p.Z)}
		max = Vec3{maxf(max.X, p.X), maxf(max.Y, p.Y), maxf(max.Z, p.Z)}
	}
	return min, max
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
