package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-collide/internal/config"
	"github.com/Faultbox/midgard-collide/internal/logger"
	"github.com/Faultbox/midgard-collide/internal/scene"
	"github.com/Faultbox/midgard-collide/internal/sim"
	"github.com/Faultbox/midgard-collide/pkg/math"
)

func loadScene(args []string, usage string) (*scene.Scene, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("usage: collidesim %s", usage)
	}
	s, err := scene.Load(args[0])
	if err != nil {
		return nil, err
	}
	min, max := s.Bounds()
	logger.Info("scene loaded",
		zap.String("name", s.Name),
		zap.Int("triangles", len(s.Triangles)),
		zap.Int("actors", len(s.Actors)),
		zap.String("min", vec(min)),
		zap.String("max", vec(max)),
	)
	return s, nil
}

func cmdRun(cfg *config.Config, args []string) error {
	s, err := loadScene(args, "run <scene.yaml>")
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rep, err := sim.New(cfg, s, logger.Named("sim")).Run(ctx)
	if errors.Is(err, context.Canceled) {
		fmt.Println("Interrupted, partial results:")
	} else if err != nil {
		return err
	}

	fmt.Printf("Scene:     %s\n", rep.Scene)
	fmt.Printf("Ticks:     %d (%v simulated)\n", rep.Ticks, rep.Simulated)
	fmt.Println()
	fmt.Printf("%-12s %-28s %-28s %-6s %-6s %s\n", "ACTOR", "START", "FINAL", "GROUND", "AIR", "TRAVELLED")
	for _, a := range rep.Actors {
		fmt.Printf("%-12s %-28s %-28s %-6v %-6d %.3f\n",
			a.Name, vec(a.Start), vec(a.Final), a.OnGround, a.AirborneTicks, a.Travelled)
	}
	printBeams(rep.Beams)
	return nil
}

func cmdTrace(cfg *config.Config, args []string) error {
	s, err := loadScene(args, "trace <scene.yaml>")
	if err != nil {
		return err
	}

	beams := sim.New(cfg, s, logger.Named("sim")).Trace()
	if len(beams) == 0 {
		fmt.Println("No beams in scene")
		return nil
	}
	printBeams(beams)
	return nil
}

func cmdGround(cfg *config.Config, args []string) error {
	s, err := loadScene(args, "ground <scene.yaml>")
	if err != nil {
		return err
	}

	fmt.Printf("%-12s %-28s %-28s %-6s %s\n", "ACTOR", "START", "GROUNDED", "GROUND", "TERRAIN")
	for _, sp := range sim.New(cfg, s, logger.Named("sim")).Spawn() {
		terrain := "-"
		if sp.Terrain != nil {
			terrain = fmt.Sprintf("%.3f", *sp.Terrain)
		}
		fmt.Printf("%-12s %-28s %-28s %-6v %s\n", sp.Name, vec(sp.Start), vec(sp.Position), sp.OnGround, terrain)
	}
	return nil
}

func cmdConfig(cfg *config.Config, args []string) error {
	if len(args) > 0 {
		if err := cfg.SaveTo(args[0]); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Wrote %s\n", args[0])
		return nil
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Printf("Wrote config to %s\n", config.ConfigDir())
	return nil
}

func printBeams(beams []sim.BeamReport) {
	if len(beams) == 0 {
		return
	}
	fmt.Println()
	fmt.Printf("%-12s %-28s %-28s %s\n", "BEAM", "FROM", "END", "BLOCKED")
	for _, b := range beams {
		fmt.Printf("%-12s %-28s %-28s %v\n", b.Name, vec(b.From), vec(b.End), b.Blocked)
	}
}

func vec(v math.Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
