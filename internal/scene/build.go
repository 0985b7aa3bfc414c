package scene

import (
	"fmt"
	"sort"

	"go.uber.org/multierr"

	"github.com/Faultbox/midgard-collide/pkg/collision"
	"github.com/Faultbox/midgard-collide/pkg/math"
)

// Build turns a parsed document into a scene. Every invalid shape, actor and
// beam is reported in the returned error, not just the first one.
func Build(f *File) (*Scene, error) {
	s := &Scene{Name: f.Name}
	var errs error

	for i, def := range f.Shapes {
		tris, hf, err := buildShape(def)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("shape %s: %w", label(def.Name, i), err))
			continue
		}
		s.Triangles = append(s.Triangles, tris...)
		if hf != nil {
			s.Heightfields = append(s.Heightfields, hf)
		}
	}

	for i, def := range f.Actors {
		a, err := buildActor(def)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("actor %s: %w", label(def.Name, i), err))
			continue
		}
		s.Actors = append(s.Actors, a)
	}

	for i, def := range f.Beams {
		from, to := math.V3(def.From), math.V3(def.To)
		s.Beams = append(s.Beams, Beam{Name: label(def.Name, i), From: from, To: to})
	}

	if errs != nil {
		return nil, errs
	}
	return s, nil
}

func label(name string, index int) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("#%d", index)
}

func buildShape(def ShapeDef) ([]math.Triangle, *Heightfield, error) {
	var (
		tris []math.Triangle
		hf   *Heightfield
	)

	switch def.Kind {
	case "triangle":
		if len(def.Points) != 3 {
			return nil, nil, fmt.Errorf("triangle needs 3 points, got %d", len(def.Points))
		}
		tris = []math.Triangle{math.Tri(math.V3(def.Points[0]), math.V3(def.Points[1]), math.V3(def.Points[2]))}
	case "quad":
		if len(def.Points) != 4 {
			return nil, nil, fmt.Errorf("quad needs 4 points, got %d", len(def.Points))
		}
		tris = quad(math.V3(def.Points[0]), math.V3(def.Points[1]), math.V3(def.Points[2]), math.V3(def.Points[3]))
	case "box":
		size := math.V3(def.Size)
		if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
			return nil, nil, fmt.Errorf("box size %v must be positive", def.Size)
		}
		tris = box(size.Scale(0.5))
	case "ramp":
		size := math.V3(def.Size)
		if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
			return nil, nil, fmt.Errorf("ramp size %v must be positive", def.Size)
		}
		tris = ramp(size.X, size.Y, size.Z)
	case "heightfield":
		var err error
		if hf, err = buildHeightfield(def); err != nil {
			return nil, nil, err
		}
		return hf.Triangles(), hf, nil
	default:
		return nil, nil, fmt.Errorf("unknown kind %q", def.Kind)
	}

	m, err := transform(def.Transform)
	if err != nil {
		return nil, nil, err
	}

	out := make([]math.Triangle, 0, len(tris))
	for _, t := range tris {
		t = m.TransformTriangle(t)
		if t.Degenerate() {
			return nil, nil, fmt.Errorf("degenerate triangle %v", t.P)
		}
		out = append(out, t)
	}
	return out, hf, nil
}

// transform composes translate * rotate * scale.
func transform(def TransformDef) (math.Mat4, error) {
	scale := math.V3(def.Scale)
	for i, c := range def.Scale {
		if c == 0 {
			scale = scale.Add(unitAxis(i))
		}
	}

	m := math.Translate(math.V3(def.Translate))
	if def.Degrees != 0 {
		axis := math.V3(def.Axis)
		if axis.IsZero() {
			return math.Mat4{}, fmt.Errorf("rotation of %v degrees without an axis", def.Degrees)
		}
		m = m.Mul(math.QuatFromAxisAngle(axis, math.Radians(def.Degrees)).ToMat4())
	}
	return m.Mul(math.Scale(scale)), nil
}

func unitAxis(i int) math.Vec3 {
	var a [3]float32
	a[i] = 1
	return math.V3(a)
}

// Heightfields keep their grid axis-aligned so HeightAt stays exact.
func buildHeightfield(def ShapeDef) (*Heightfield, error) {
	if def.Heightfield == nil {
		return nil, fmt.Errorf("heightfield without grid")
	}
	if def.Transform.Degrees != 0 || def.Transform.Scale != ([3]float32{}) {
		return nil, fmt.Errorf("heightfield supports translate only")
	}

	g := def.Heightfield
	var errs error
	if g.CellSize <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("cell_size must be positive"))
	}
	if len(g.Heights) < 2 {
		errs = multierr.Append(errs, fmt.Errorf("need at least 2 rows, got %d", len(g.Heights)))
	} else {
		cols := len(g.Heights[0])
		if cols < 2 {
			errs = multierr.Append(errs, fmt.Errorf("need at least 2 columns, got %d", cols))
		}
		for i, row := range g.Heights {
			if len(row) != cols {
				errs = multierr.Append(errs, fmt.Errorf("row %d has %d columns, want %d", i, len(row), cols))
			}
		}
	}
	if errs != nil {
		return nil, errs
	}

	return &Heightfield{
		Name:     def.Name,
		Origin:   math.V3(def.Transform.Translate),
		CellSize: g.CellSize,
		Heights:  g.Heights,
	}, nil
}

func buildActor(def ActorDef) (Actor, error) {
	var errs error
	if len(def.Colliders) == 0 {
		errs = multierr.Append(errs, fmt.Errorf("no colliders"))
	}
	if def.MoveSpeed < 0 {
		errs = multierr.Append(errs, fmt.Errorf("move_speed must not be negative"))
	}
	if def.JumpSpeed < 0 {
		errs = multierr.Append(errs, fmt.Errorf("jump_speed must not be negative"))
	}

	colliders := make([]collision.Collider, 0, len(def.Colliders))
	for i, c := range def.Colliders {
		switch c.Kind {
		case "sphere":
			if c.Radius <= 0 {
				errs = multierr.Append(errs, fmt.Errorf("collider %d: sphere radius must be positive", i))
				continue
			}
			colliders = append(colliders, collision.SphereCollider{Offset: math.V3(c.Offset), Radius: c.Radius})
		case "feet":
			if c.Offset == ([3]float32{}) {
				errs = multierr.Append(errs, fmt.Errorf("collider %d: feet offset must not be zero", i))
				continue
			}
			colliders = append(colliders, collision.FeetCollider{Offset: math.V3(c.Offset)})
		default:
			errs = multierr.Append(errs, fmt.Errorf("collider %d: unknown kind %q", i, c.Kind))
		}
	}
	if errs != nil {
		return Actor{}, errs
	}

	script := make([]Input, len(def.Script))
	for i, in := range def.Script {
		script[i] = Input{At: in.At, Move: math.V3(in.Move), Jump: in.Jump}
	}
	sort.SliceStable(script, func(i, j int) bool { return script[i].At < script[j].At })

	return Actor{
		Name:      def.Name,
		Position:  math.V3(def.Position),
		MoveSpeed: def.MoveSpeed,
		JumpSpeed: def.JumpSpeed,
		CameraYaw: math.Radians(def.CameraYaw),
		Colliders: colliders,
		Script:    script,
	}, nil
}

// quad splits a four-point loop along its first diagonal.
func quad(a, b, c, d math.Vec3) []math.Triangle {
	return []math.Triangle{math.Tri(a, b, c), math.Tri(a, c, d)}
}

// box builds a closed box with outward-facing triangles.
func box(h math.Vec3) []math.Triangle {
	p := func(sx, sy, sz float32) math.Vec3 {
		return math.Vec3{X: sx * h.X, Y: sy * h.Y, Z: sz * h.Z}
	}

	var tris []math.Triangle
	for _, face := range faces(p) {
		tris = append(tris, face...)
	}
	return tris
}

func faces(p func(sx, sy, sz float32) math.Vec3) [][]math.Triangle {
	return [][]math.Triangle{
		quad(p(-1, 1, -1), p(-1, 1, 1), p(1, 1, 1), p(1, 1, -1)),     // +Y
		quad(p(-1, -1, -1), p(1, -1, -1), p(1, -1, 1), p(-1, -1, 1)), // -Y
		quad(p(1, -1, -1), p(1, 1, -1), p(1, 1, 1), p(1, -1, 1)),     // +X
		quad(p(-1, -1, -1), p(-1, -1, 1), p(-1, 1, 1), p(-1, 1, -1)), // -X
		quad(p(-1, -1, 1), p(1, -1, 1), p(1, 1, 1), p(-1, 1, 1)),     // +Z
		quad(p(-1, -1, -1), p(-1, 1, -1), p(1, 1, -1), p(1, -1, -1)), // -Z
	}
}

// ramp builds a closed wedge centered on X that rises from z=0 to height at
// z=length.
func ramp(width, height, length float32) []math.Triangle {
	w := width / 2
	v := func(x, y, z float32) math.Vec3 { return math.Vec3{X: x, Y: y, Z: z} }

	var tris []math.Triangle
	tris = append(tris, quad(v(-w, 0, 0), v(-w, height, length), v(w, height, length), v(w, 0, 0))...) // slope
	tris = append(tris, quad(v(-w, 0, length), v(w, 0, length), v(w, height, length), v(-w, height, length))...)
	tris = append(tris, quad(v(-w, 0, 0), v(w, 0, 0), v(w, 0, length), v(-w, 0, length))...)
	tris = append(tris,
		math.Tri(v(w, 0, 0), v(w, height, length), v(w, 0, length)),
		math.Tri(v(-w, 0, 0), v(-w, 0, length), v(-w, height, length)),
	)
	return tris
}
