package config

// SchedulerConfig holds the per-tick production scheduler tuning. Every
// weight and threshold the utility scorer consumes lives here so dry-run
// tuning never requires a rebuild.
type SchedulerConfig struct {
	Weights WeightsConfig `mapstructure:"weights"`

	// StoredEnergyHighWater is the stored-energy level above which upgrader
	// utility gets its surplus boost.
	StoredEnergyHighWater int `mapstructure:"stored_energy_high_water" validate:"min=0"`

	// ExpansionLevel is the minimum colony level before any expansion role
	// scores above zero.
	ExpansionLevel int `mapstructure:"expansion_level" validate:"min=1,max=8"`

	// ExpansionMinHarvesters / ExpansionMinHaulers gate expansion behind a
	// working home economy.
	ExpansionMinHarvesters int `mapstructure:"expansion_min_harvesters" validate:"min=0"`
	ExpansionMinHaulers    int `mapstructure:"expansion_min_haulers" validate:"min=0"`

	// MinimumCounts is the floor per role name below which the transition
	// governor never delays spawning nor suppresses renewal.
	MinimumCounts map[string]int `mapstructure:"minimum_counts"`
}

// WeightsConfig holds the utility formula weights per role family.
type WeightsConfig struct {
	Harvester float64 `mapstructure:"harvester" validate:"gt=0"`
	Hauler    float64 `mapstructure:"hauler" validate:"gt=0"`
	Upgrader  float64 `mapstructure:"upgrader" validate:"gt=0"`
	Builder   float64 `mapstructure:"builder" validate:"gt=0"`
	Defender  float64 `mapstructure:"defender" validate:"gt=0"`

	// Expansion scales the mirrored remote formulas relative to their home
	// counterparts.
	Expansion float64 `mapstructure:"expansion" validate:"gt=0"`

	// Scout is the flat per-deficit weight for scouting.
	Scout float64 `mapstructure:"scout" validate:"gt=0"`
}

// MinimumCount returns the configured floor for a role name, zero when the
// role has no floor.
func (c SchedulerConfig) MinimumCount(roleName string) int {
	if c.MinimumCounts == nil {
		return 0
	}
	return c.MinimumCounts[roleName]
}
