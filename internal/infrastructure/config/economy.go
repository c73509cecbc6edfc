package config

// EconomyConfig holds the economic coordinator cadence and phase thresholds.
type EconomyConfig struct {
	// RefreshInterval is how many ticks pass between strategic refreshes.
	// Every consumer of strategic state tolerates staleness up to this.
	RefreshInterval int64 `mapstructure:"refresh_interval" validate:"min=1"`

	// EmergencyHostileDPS: estimated hostile damage per tick above which the
	// colony enters the emergency phase.
	EmergencyHostileDPS float64 `mapstructure:"emergency_hostile_dps" validate:"gt=0"`

	// BootstrapMaxLevel / DevelopingMaxLevel split the non-emergency phases
	// by colony level.
	BootstrapMaxLevel  int `mapstructure:"bootstrap_max_level" validate:"min=1,max=8"`
	DevelopingMaxLevel int `mapstructure:"developing_max_level" validate:"min=1,max=8"`

	// LowComputeBucket: compute reserve below which the compute bottleneck
	// is reported.
	LowComputeBucket int `mapstructure:"low_compute_bucket" validate:"min=0"`

	// TelemetryWindow is the number of income samples kept per colony for
	// the rolling average.
	TelemetryWindow int `mapstructure:"telemetry_window" validate:"min=1"`
}
