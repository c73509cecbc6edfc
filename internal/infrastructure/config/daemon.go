package config

import "time"

// DaemonConfig holds the tick-loop daemon configuration
type DaemonConfig struct {
	// Ticks per second the daemon drives each colony at
	TickRate float64 `mapstructure:"tick_rate" validate:"required,gt=0"`

	// Colonies the daemon manages. Each runs an independent decision loop;
	// there is no cross-colony ordering or shared state.
	Colonies []string `mapstructure:"colonies"`

	// PID file location
	PIDFile string `mapstructure:"pid_file"`

	// Graceful shutdown timeout
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required"`
}
