package config

// GovernorConfig holds the transition governor thresholds.
type GovernorConfig struct {
	// SuppressCapacityRatio: renewal is suppressed only when the projected
	// capacity increase reaches this ratio.
	SuppressCapacityRatio float64 `mapstructure:"suppress_capacity_ratio" validate:"gte=1"`

	// SuppressEtaTicks: renewal suppression also requires completion within
	// this many ticks.
	SuppressEtaTicks float64 `mapstructure:"suppress_eta_ticks" validate:"gt=0"`

	// DelayEtaTicks: non-critical spawning is deferred once completion is
	// projected within this many ticks.
	DelayEtaTicks float64 `mapstructure:"delay_eta_ticks" validate:"gt=0"`

	// BuildEfficiency derates theoretical builder throughput for travel and
	// refill time when estimating completion.
	BuildEfficiency float64 `mapstructure:"build_efficiency" validate:"gt=0,lte=1"`

	// CheapRenewalFraction: units whose body cost is below this fraction of
	// current capacity are never renewed, transition or not.
	CheapRenewalFraction float64 `mapstructure:"cheap_renewal_fraction" validate:"gt=0,lte=1"`
}
