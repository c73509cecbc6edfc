package economy

import (
	"github.com/jappenzeller/colonybot/internal/domain/colony"
	"github.com/jappenzeller/colonybot/internal/domain/economy"
)

// phaseAllocations is the fixed per-phase split of the energy budget across
// spending purposes, in percent. Every row sums to 100.
var phaseAllocations = map[economy.Phase]economy.Allocation{
	economy.PhaseBootstrap:  {Spawn: 60, Upgrade: 10, Build: 20, Repair: 5, Reserve: 5},
	economy.PhaseDeveloping: {Spawn: 45, Upgrade: 25, Build: 20, Repair: 5, Reserve: 5},
	economy.PhaseStable:     {Spawn: 30, Upgrade: 40, Build: 15, Repair: 10, Reserve: 5},
	economy.PhaseEmergency:  {Spawn: 80, Upgrade: 0, Build: 5, Repair: 10, Reserve: 5},
}

// fallbackIncomeFraction of the theoretical maximum stands in for measured
// income when telemetry has no samples yet.
const fallbackIncomeFraction = 0.5

// computeBudget derives the energy budget from telemetry and the phase's
// fixed allocation row.
func (c *Coordinator) computeBudget(state *colony.State, phase economy.Phase) economy.EnergyBudget {
	income, ok := 0.0, false
	if c.income != nil {
		income, ok = c.income.MeanIncome(state.Name)
	}
	if !ok {
		income = fallbackIncomeFraction * state.MaxEnergyIncome
	}

	maxIncome := state.MaxEnergyIncome
	denom := maxIncome
	if denom < 1 {
		denom = 1
	}
	efficiency := income / denom
	if efficiency < 0 {
		efficiency = 0
	}
	if efficiency > 1 {
		efficiency = 1
	}

	return economy.EnergyBudget{
		IncomePerTick:     income,
		MaxIncomePerTick:  maxIncome,
		HarvestEfficiency: efficiency,
		Allocations:       phaseAllocations[phase],
	}
}
