// Package config handles simulation configuration loading and management.
package config

import (
	"fmt"
	gomath "math"
	"time"

	"go.uber.org/multierr"

	"github.com/Faultbox/midgard-collide/pkg/collision"
	"github.com/Faultbox/midgard-collide/pkg/math"
)

// Config holds all settings.
type Config struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Simulation SimulationConfig `yaml:"simulation"`
	Camera     CameraConfig     `yaml:"camera"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// PhysicsConfig holds world and solver settings.
type PhysicsConfig struct {
	Up              [3]float32 `yaml:"up"`                // World up axis, need not be +Y
	Gravity         float32    `yaml:"gravity"`           // Units per second squared
	MaxSlopeDegrees float32    `yaml:"max_slope_degrees"` // Steeper surfaces are walls

	MinWallDistance    float32 `yaml:"min_wall_distance"`
	Convergence        float32 `yaml:"convergence"`
	MaxIterations      int     `yaml:"max_iterations"`
	GroundProbeFactor  float32 `yaml:"ground_probe_factor"`
	GroundCastDistance float32 `yaml:"ground_cast_distance"`
}

// SimulationConfig holds fixed-tick runner settings.
type SimulationConfig struct {
	TickRate int           `yaml:"tick_rate"` // Ticks per second
	Duration time.Duration `yaml:"duration"`
	Workers  int           `yaml:"workers"` // Actors stepped in parallel, 0 = one per actor
}

// CameraConfig holds third-person camera settings.
type CameraConfig struct {
	Distance float32 `yaml:"distance"`
	Pitch    float32 `yaml:"pitch"`  // Radians above the horizon
	Margin   float32 `yaml:"margin"` // Gap kept in front of blocking geometry
	Height   float32 `yaml:"height"` // Look-at height above the actor
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	Format  string `yaml:"format"` // console or json
}

// Default returns a Config with sensible default values.
func Default() *Config {
	tol := collision.DefaultTolerances()
	return &Config{
		Physics: PhysicsConfig{
			Up:                 [3]float32{0, 1, 0},
			Gravity:            9.81,
			MaxSlopeDegrees:    45,
			MinWallDistance:    tol.MinWallDistance,
			Convergence:        tol.Convergence,
			MaxIterations:      tol.MaxIterations,
			GroundProbeFactor:  tol.GroundProbeFactor,
			GroundCastDistance: tol.GroundCastDistance,
		},
		Simulation: SimulationConfig{
			TickRate: 60,
			Duration: 5 * time.Second,
			Workers:  0,
		},
		Camera: CameraConfig{
			Distance: 6,
			Pitch:    0.5,
			Margin:   0.2,
			Height:   1.5,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
			Format:  "console",
		},
	}
}

// Tolerances returns the solver settings.
func (p PhysicsConfig) Tolerances() collision.Tolerances {
	return collision.Tolerances{
		MinWallDistance:    p.MinWallDistance,
		Convergence:        p.Convergence,
		MaxIterations:      p.MaxIterations,
		GroundProbeFactor:  p.GroundProbeFactor,
		GroundCastDistance: p.GroundCastDistance,
	}
}

// UpVector returns the normalized up axis.
func (p PhysicsConfig) UpVector() math.Vec3 {
	return math.V3(p.Up).Normalize()
}

// MinCosine returns the slope limit as the cosine the solver expects.
func (p PhysicsConfig) MinCosine() float32 {
	return float32(gomath.Cos(float64(p.MaxSlopeDegrees) * gomath.Pi / 180))
}

// TickDuration returns the simulated time per tick.
func (s SimulationConfig) TickDuration() time.Duration {
	if s.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(s.TickRate)
}

// Ticks returns how many ticks cover Duration.
func (s SimulationConfig) Ticks() int {
	step := s.TickDuration()
	if step == 0 {
		return 0
	}
	return int(s.Duration / step)
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error
	p := c.Physics
	if math.V3(p.Up).IsZero() {
		err = multierr.Append(err, fmt.Errorf("physics.up must not be zero"))
	}
	if p.MaxSlopeDegrees <= 0 || p.MaxSlopeDegrees >= 90 {
		err = multierr.Append(err, fmt.Errorf("physics.max_slope_degrees %v out of range (0, 90)", p.MaxSlopeDegrees))
	}
	if p.MinWallDistance <= 0 {
		err = multierr.Append(err, fmt.Errorf("physics.min_wall_distance must be positive"))
	}
	if p.Convergence <= 0 {
		err = multierr.Append(err, fmt.Errorf("physics.convergence must be positive"))
	}
	if p.MaxIterations < 1 {
		err = multierr.Append(err, fmt.Errorf("physics.max_iterations must be at least 1"))
	}
	if p.GroundProbeFactor < 1 {
		err = multierr.Append(err, fmt.Errorf("physics.ground_probe_factor must be at least 1"))
	}
	if p.GroundCastDistance <= 0 {
		err = multierr.Append(err, fmt.Errorf("physics.ground_cast_distance must be positive"))
	}
	if c.Simulation.TickRate <= 0 {
		err = multierr.Append(err, fmt.Errorf("simulation.tick_rate must be positive"))
	}
	if c.Simulation.Duration < 0 {
		err = multierr.Append(err, fmt.Errorf("simulation.duration must not be negative"))
	}
	if c.Simulation.Workers < 0 {
		err = multierr.Append(err, fmt.Errorf("simulation.workers must not be negative"))
	}
	if c.Camera.Distance <= 0 {
		err = multierr.Append(err, fmt.Errorf("camera.distance must be positive"))
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		err = multierr.Append(err, fmt.Errorf("logging.format %q must be console or json", c.Logging.Format))
	}
	return err
}
