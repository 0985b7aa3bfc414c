package math

import "github.com/chewxy/math32"

// ParallelEpsilon is the smallest |normal·direction| treated as a crossing.
const ParallelEpsilon = 1e-6

// Plane is the set of points p with N·p + D = 0. N is a unit vector and the
// positive half-space is the side N points toward.
type Plane struct {
	N Vec3
	D float32
}

// NewPlane builds the plane through point with the given unit normal.
func NewPlane(normal, point Vec3) Plane {
	return Plane{N: normal, D: -normal.Dot(point)}
}

// Distance returns the signed distance from p to the plane.
func (pl Plane) Distance(p Vec3) float32 {
	return pl.N.Dot(p) + pl.D
}

// Project returns p moved along the normal onto the plane.
func (pl Plane) Project(p Vec3) Vec3 {
	return p.Sub(pl.N.Scale(pl.Distance(p)))
}

// Flip returns the same plane facing the other way.
func (pl Plane) Flip() Plane {
	return Plane{N: pl.N.Negate(), D: -pl.D}
}

// Valid reports whether the plane has a usable normal.
func (pl Plane) Valid() bool {
	return !pl.N.IsZero()
}

// IntersectLine returns t such that origin + dir*t lies on the plane.
// Lines parallel to the plane report false.
func (pl Plane) IntersectLine(origin, dir Vec3) (float32, bool) {
	denom := pl.N.Dot(dir)
	if math32.Abs(denom) < ParallelEpsilon {
		return 0, false
	}
	return -pl.Distance(origin) / denom, true
}
