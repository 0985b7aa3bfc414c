// Package sim runs scripted actors through a scene on a fixed tick.
package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/chewxy/math32"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/midgard-collide/internal/actor"
	"github.com/Faultbox/midgard-collide/internal/camera"
	"github.com/Faultbox/midgard-collide/internal/config"
	"github.com/Faultbox/midgard-collide/internal/scene"
	"github.com/Faultbox/midgard-collide/pkg/collision"
	"github.com/Faultbox/midgard-collide/pkg/math"
)

// Runner steps every actor of a scene once per tick. Actors do not collide
// with each other; they share the scene's triangles read-only, so one tick
// steps all of them in parallel.
type Runner struct {
	cfg      *config.Config
	scene    *scene.Scene
	resolver *collision.Resolver
	log      *zap.Logger
}

// New creates a runner. A nil logger discards output.
func New(cfg *config.Config, sc *scene.Scene, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		cfg:      cfg,
		scene:    sc,
		resolver: collision.NewResolver(cfg.Physics.Tolerances()),
		log:      log,
	}
}

// track is one actor's mutable run state. Each goroutine touches only its
// own track.
type track struct {
	def    *scene.Actor
	ctrl   *actor.Controller
	cam    *camera.ThirdPersonCamera
	state  actor.State
	report ActorReport
}

func (r *Runner) controller(a *scene.Actor) *actor.Controller {
	p := r.cfg.Physics
	return actor.NewController(r.resolver, r.scene.Triangles, a.Colliders, actor.Params{
		Up:        p.UpVector(),
		MinCosine: p.MinCosine(),
		Gravity:   p.Gravity,
		MoveSpeed: a.MoveSpeed,
		JumpSpeed: a.JumpSpeed,
	})
}

func (r *Runner) camera(a *scene.Actor) *camera.ThirdPersonCamera {
	c := camera.NewThirdPersonCamera(r.cfg.Physics.UpVector())
	c.Yaw = a.CameraYaw
	c.Pitch = r.cfg.Camera.Pitch
	c.Distance = r.cfg.Camera.Distance
	c.Margin = r.cfg.Camera.Margin
	c.Height = r.cfg.Camera.Height
	return c
}

// Spawn places every actor on the ground below its start position.
func (r *Runner) Spawn() []SpawnReport {
	out := make([]SpawnReport, len(r.scene.Actors))
	for i := range r.scene.Actors {
		a := &r.scene.Actors[i]
		s := r.controller(a).Spawn(a.Position)
		out[i] = SpawnReport{
			Name:     a.Name,
			Start:    a.Position,
			Position: s.Position,
			OnGround: s.OnGround,
		}
		if hf := r.heightfieldBelow(s.Position); hf != nil {
			h := hf.HeightAt(s.Position.X, s.Position.Z)
			out[i].Terrain = &h
		}
	}
	return out
}

// heightfieldBelow returns the heightfield whose grid covers p horizontally.
// Heightfields are laid out on X and Z, so this only makes sense with +Y up.
func (r *Runner) heightfieldBelow(p math.Vec3) *scene.Heightfield {
	for _, hf := range r.scene.Heightfields {
		w := float32(hf.Cols()-1) * hf.CellSize
		d := float32(hf.Rows()-1) * hf.CellSize
		if p.X >= hf.Origin.X && p.X <= hf.Origin.X+w && p.Z >= hf.Origin.Z && p.Z <= hf.Origin.Z+d {
			return hf
		}
	}
	return nil
}

// Trace shortens every scene beam at the first surface it crosses.
func (r *Runner) Trace() []BeamReport {
	out := make([]BeamReport, len(r.scene.Beams))
	for i, b := range r.scene.Beams {
		end := collision.TraceBeam(b.From, b.To, r.scene.Triangles)
		out[i] = BeamReport{
			Name:    b.Name,
			From:    b.From,
			To:      b.To,
			End:     end,
			Blocked: end != b.To,
		}
	}
	return out
}

// Run simulates the configured duration, or until ctx is cancelled.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	step := r.cfg.Simulation.TickDuration()
	ticks := r.cfg.Simulation.Ticks()
	if step <= 0 {
		return nil, fmt.Errorf("tick rate %d must be positive", r.cfg.Simulation.TickRate)
	}
	dt := float32(step.Seconds())

	tracks := make([]*track, len(r.scene.Actors))
	for i := range r.scene.Actors {
		a := &r.scene.Actors[i]
		t := &track{def: a, ctrl: r.controller(a), cam: r.camera(a)}
		t.state = t.ctrl.Spawn(a.Position)
		t.report = ActorReport{Name: a.Name, Start: t.state.Position}
		tracks[i] = t
	}

	r.log.Info("simulation started",
		zap.String("scene", r.scene.Name),
		zap.Int("actors", len(tracks)),
		zap.Int("triangles", len(r.scene.Triangles)),
		zap.Int("ticks", ticks),
		zap.Duration("step", step),
	)

	started := time.Now()
	done := 0
	for tick := 0; tick < ticks; tick++ {
		if err := ctx.Err(); err != nil {
			r.log.Warn("simulation cancelled", zap.Int("tick", tick))
			return r.report(tracks, done, step), err
		}
		now := time.Duration(tick) * step
		if err := r.tick(ctx, tracks, now, dt); err != nil {
			return r.report(tracks, done, step), fmt.Errorf("tick %d: %w", tick, err)
		}
		done++
	}

	report := r.report(tracks, done, step)
	r.log.Info("simulation finished",
		zap.Int("ticks", done),
		zap.Duration("wall", time.Since(started)),
	)
	return report, nil
}

func (r *Runner) tick(ctx context.Context, tracks []*track, now time.Duration, dt float32) error {
	g, ctx := errgroup.WithContext(ctx)
	if w := r.cfg.Simulation.Workers; w > 0 {
		g.SetLimit(w)
	}

	for _, t := range tracks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return r.advance(t, now, dt)
		})
	}
	return g.Wait()
}

func (r *Runner) advance(t *track, now time.Duration, dt float32) error {
	in := t.def.InputAt(now)
	prev := t.state
	t.state = t.ctrl.Step(prev, actor.Input{Move: in.Move, Jump: in.Jump}, dt)

	p := t.state.Position
	if !finite(p) {
		return fmt.Errorf("actor %s: position %v is not finite", t.def.Name, p)
	}

	if prev.OnGround != t.state.OnGround {
		r.log.Debug("support changed",
			zap.String("actor", t.def.Name),
			zap.Bool("on_ground", t.state.OnGround),
			zap.Duration("at", now),
		)
	}
	if !t.state.OnGround {
		t.report.AirborneTicks++
	}
	t.report.Travelled += p.Distance(prev.Position)
	return nil
}

func (r *Runner) report(tracks []*track, ticks int, step time.Duration) *Report {
	rep := &Report{
		Scene:     r.scene.Name,
		Ticks:     ticks,
		Simulated: time.Duration(ticks) * step,
		Actors:    make([]ActorReport, len(tracks)),
		Beams:     r.Trace(),
	}
	for i, t := range tracks {
		a := t.report
		a.Final = t.state.Position
		a.OnGround = t.state.OnGround
		a.Camera = t.cam.Position(a.Final, r.scene.Triangles)
		rep.Actors[i] = a
	}
	return rep
}

func finite(v math.Vec3) bool {
	for _, c := range v.Array() {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}
