// collidesim runs scripted actors through a collision scene and reports
// where they end up.
package main

import (
	"fmt"
	"os"

	"github.com/Faultbox/midgard-collide/internal/config"
	"github.com/Faultbox/midgard-collide/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	command := args[0]
	rest := args[1:]

	switch command {
	case "run":
		err = cmdRun(cfg, rest)
	case "trace":
		err = cmdTrace(cfg, rest)
	case "ground":
		err = cmdGround(cfg, rest)
	case "config":
		err = cmdConfig(cfg, rest)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`collidesim - collision and sliding simulator

Usage:
  collidesim [flags] <command> [args]

Commands:
  run <scene.yaml>       Simulate all actors and print where they end up
  trace <scene.yaml>     Trace the scene's beams against its geometry
  ground <scene.yaml>    Drop every actor onto the ground and report support
  config [path]          Write the effective configuration

Flags:
  -config <file>         Config file (default ./collide.yaml or user config dir)
  -debug                 Debug logging
  -duration <d>          Simulated time, e.g. 10s
  -tick-rate <n>         Ticks per second
  -max-slope <deg>       Steepest walkable slope
  -log-file <file>       Also log to a rotated file
  -log-format <fmt>      console or json

Examples:
  collidesim run scenes/courtyard.yaml
  collidesim -duration 20s -max-slope 35 run scenes/courtyard.yaml
  collidesim trace scenes/courtyard.yaml`)
}
