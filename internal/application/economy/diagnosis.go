package economy

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/jappenzeller/colonybot/internal/domain/colony"
	"github.com/jappenzeller/colonybot/internal/domain/economy"
)

// lowEfficiencyThreshold marks the harvest efficiency below which income
// itself is the limiting factor.
const lowEfficiencyThreshold = 0.5

// groundEnergyThreshold is the pile of unhauled energy that indicates a
// logistics problem rather than noise.
const groundEnergyThreshold = 500

// diagnose names the single constraint limiting colony growth. First match
// wins; the order runs from the most upstream constraint downward.
func (c *Coordinator) diagnose(state *colony.State, budget economy.EnergyBudget, workforce economy.WorkforceRequirements) economy.Bottleneck {
	if budget.HarvestEfficiency < lowEfficiencyThreshold {
		return economy.BottleneckIncome
	}

	if state.EnergyOnGround > groundEnergyThreshold {
		if state.StorageFreeCapacity > 0 {
			return economy.BottleneckTransport
		}
		return economy.BottleneckConsumption
	}

	if state.CriticalSitesMissing {
		return economy.BottleneckConstruction
	}

	if workforce.PositiveGaps() >= 3 {
		return economy.BottleneckPopulation
	}

	if state.SpawnerBusy && workforce.PositiveGaps() > 0 {
		return economy.BottleneckCapacity
	}

	if state.ComputeBucket < c.cfg.LowComputeBucket {
		return economy.BottleneckCompute
	}

	return economy.BottleneckNone
}

// recommend renders the informational recommendation list. Nothing in the
// decision pipeline consumes these; they exist for operators reading the
// store.
func (c *Coordinator) recommend(state *colony.State, budget economy.EnergyBudget, bottleneck economy.Bottleneck) []string {
	var out []string

	switch bottleneck {
	case economy.BottleneckIncome:
		out = append(out, fmt.Sprintf("harvest efficiency %.0f%%: add harvesters (income %s/tick of %s/tick possible)",
			budget.HarvestEfficiency*100,
			humanize.FtoaWithDigits(budget.IncomePerTick, 1),
			humanize.FtoaWithDigits(budget.MaxIncomePerTick, 1)))
	case economy.BottleneckTransport:
		out = append(out, fmt.Sprintf("%s energy on the ground with free storage: add haulers",
			humanize.Comma(int64(state.EnergyOnGround))))
	case economy.BottleneckConsumption:
		out = append(out, "storage full and energy piling up: add upgraders or builders to consume the surplus")
	case economy.BottleneckConstruction:
		out = append(out, "critical structures missing: prioritize construction")
	case economy.BottleneckPopulation:
		out = append(out, "three or more roles understaffed: spawn throughput is the constraint")
	case economy.BottleneckCapacity:
		out = append(out, "spawner saturated while roles are understaffed: expand capacity")
	case economy.BottleneckCompute:
		out = append(out, fmt.Sprintf("compute bucket at %s: reduce per-tick work", humanize.Comma(int64(state.ComputeBucket))))
	}

	if state.EnergyStored > 0 {
		out = append(out, fmt.Sprintf("stored energy reserve: %s", humanize.Comma(int64(state.EnergyStored))))
	}

	return out
}
