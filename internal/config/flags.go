package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagTickRate  = flag.Int("tick-rate", 0, "Simulation ticks per second")
	flagDuration  = flag.Duration("duration", 0, "Simulated time to run")
	flagMaxSlope  = flag.Float64("max-slope", 0, "Steepest walkable slope in degrees")
	flagLogFile   = flag.String("log-file", "", "Write logs to this file")
	flagLogFormat = flag.String("log-format", "", "Log encoding: console or json")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag command-line arguments.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagTickRate > 0 {
		cfg.Simulation.TickRate = *flagTickRate
	}
	if *flagDuration > 0 {
		cfg.Simulation.Duration = *flagDuration
	}
	if *flagMaxSlope > 0 {
		cfg.Physics.MaxSlopeDegrees = float32(*flagMaxSlope)
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagLogFormat != "" {
		cfg.Logging.Format = *flagLogFormat
	}
}
