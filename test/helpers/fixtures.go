package helpers

import (
	"github.com/jappenzeller/colonybot/internal/domain/colony"
	"github.com/jappenzeller/colonybot/internal/infrastructure/config"
)

// DefaultConfig returns a fully defaulted configuration, bypassing file and
// environment loading.
func DefaultConfig() *config.Config {
	cfg := &config.Config{}
	config.SetDefaults(cfg)
	return cfg
}

// HealthyColony returns a mid-game colony with a working economy and no
// outstanding deficits. Tests adjust the fields they care about.
func HealthyColony(name string) *colony.State {
	return &colony.State{
		Name:            name,
		Tick:            1000,
		Level:           3,
		EnergyAvailable: 550,
		EnergyCapacity:  550,
		EnergyIncome:    16,
		MaxEnergyIncome: 20,
		Counts: map[colony.Role]int{
			colony.RoleHarvester: 2,
			colony.RoleHauler:    2,
			colony.RoleUpgrader:  1,
		},
		Targets: map[colony.Role]int{
			colony.RoleHarvester: 2,
			colony.RoleHauler:    2,
			colony.RoleUpgrader:  1,
		},
		ComputeBucket: 10000,
	}
}

// EmptyColony returns a freshly bootstrapped colony with no units and base
// spawner energy, the classic cold-start state.
func EmptyColony(name string) *colony.State {
	return &colony.State{
		Name:            name,
		Tick:            0,
		Level:           1,
		EnergyAvailable: 300,
		EnergyCapacity:  300,
		MaxEnergyIncome: 20,
		Targets: map[colony.Role]int{
			colony.RoleHarvester: 1,
			colony.RoleHauler:    1,
			colony.RoleUpgrader:  1,
		},
		ComputeBucket: 10000,
	}
}
