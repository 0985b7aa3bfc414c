package collision

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/midgard-collide/pkg/math"
)

var up = math.Vec3{Y: 1}

// floorQuad is a horizontal rectangle at height y facing +Y.
func floorQuad(y, x0, x1, z0, z1 float32) []math.Triangle {
	a := math.Vec3{X: x0, Y: y, Z: z0}
	b := math.Vec3{X: x0, Y: y, Z: z1}
	c := math.Vec3{X: x1, Y: y, Z: z1}
	d := math.Vec3{X: x1, Y: y, Z: z0}
	return []math.Triangle{math.Tri(a, b, c), math.Tri(a, c, d)}
}

// wallX is a vertical rectangle in the plane x facing -X.
func wallX(x, y0, y1, z0, z1 float32) []math.Triangle {
	a := math.Vec3{X: x, Y: y0, Z: z0}
	b := math.Vec3{X: x, Y: y1, Z: z0}
	c := math.Vec3{X: x, Y: y1, Z: z1}
	d := math.Vec3{X: x, Y: y0, Z: z1}
	return []math.Triangle{math.Tri(a, d, c), math.Tri(a, c, b)}
}

// wallZ is a vertical rectangle in the plane z facing -Z.
func wallZ(z, x0, x1, y0, y1 float32) []math.Triangle {
	a := math.Vec3{X: x0, Y: y0, Z: z}
	b := math.Vec3{X: x1, Y: y0, Z: z}
	c := math.Vec3{X: x1, Y: y1, Z: z}
	d := math.Vec3{X: x0, Y: y1, Z: z}
	return []math.Triangle{math.Tri(a, d, c), math.Tri(a, c, b)}
}

// slopeX rises along +X from x0 at the given angle, spanning z in [-10, 10].
func slopeX(x0, degrees, length float32) []math.Triangle {
	rad := math.Radians(degrees)
	dir := math.Vec3{X: math32.Cos(rad), Y: math32.Sin(rad)}.Scale(length)
	a := math.Vec3{X: x0, Z: -10}
	b := math.Vec3{X: x0, Z: 10}
	c := b.Add(dir)
	d := a.Add(dir)
	return []math.Triangle{math.Tri(a, b, c), math.Tri(a, c, d)}
}

func concat(parts ...[]math.Triangle) []math.Triangle {
	var out []math.Triangle
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// body is a sphere standing on the actor's reference point.
func body() []Collider {
	return []Collider{SphereCollider{Offset: math.Vec3{Y: 0.5}, Radius: 0.5}}
}
