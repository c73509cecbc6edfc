package production

import (
	"math"

	"github.com/jappenzeller/colonybot/internal/domain/colony"
	"github.com/jappenzeller/colonybot/internal/domain/economy"
	"github.com/jappenzeller/colonybot/internal/domain/unit"
	"github.com/jappenzeller/colonybot/internal/infrastructure/config"
)

// TransitionGovernor detects in-progress capacity growth and restrains
// production around it: near the end of a large expansion it is cheaper to
// let near-death units lapse and rebuild them at the new capacity than to
// renew small bodies that will be obsolete in a few hundred ticks.
type TransitionGovernor struct {
	cfg   config.GovernorConfig
	sched config.SchedulerConfig
}

// NewTransitionGovernor creates a governor with the given thresholds
func NewTransitionGovernor(cfg config.GovernorConfig, sched config.SchedulerConfig) *TransitionGovernor {
	return &TransitionGovernor{cfg: cfg, sched: sched}
}

// Assess computes the colony's capacity transition from the snapshot. The
// returned transition always satisfies FutureCapacity >= CurrentCapacity.
func (g *TransitionGovernor) Assess(state *colony.State) economy.CapacityTransition {
	t := economy.CapacityTransition{
		CurrentCapacity: state.EnergyCapacity,
		FutureCapacity:  state.EnergyCapacity,
	}

	work := state.Capacity
	if !work.Active() {
		return t
	}

	t.InTransition = true
	t.UnitsBuilding = work.UnitsBuilding
	if work.FutureCapacity > t.FutureCapacity {
		t.FutureCapacity = work.FutureCapacity
	}

	// Projected completion. No active builders means no projection: the
	// transition exists but restrains nothing.
	throughput := float64(work.BuilderWorkParts) * unit.BuildPower * g.cfg.BuildEfficiency
	if throughput > 0 {
		t.EtaTicks = float64(work.RemainingCost) / throughput
	} else {
		t.EtaTicks = math.Inf(1)
	}

	ratio := math.Inf(1)
	if t.CurrentCapacity > 0 {
		ratio = float64(t.FutureCapacity) / float64(t.CurrentCapacity)
	}

	t.SuppressRenewal = ratio >= g.cfg.SuppressCapacityRatio && t.EtaTicks < g.cfg.SuppressEtaTicks
	t.DelaySpawning = t.EtaTicks < g.cfg.DelayEtaTicks

	return t
}

// DelaysSpawn reports whether the transition defers producing the role this
// tick. Critical roles are never delayed, and neither is any role currently
// below its configured minimum count.
func (g *TransitionGovernor) DelaysSpawn(t economy.CapacityTransition, role colony.Role, state *colony.State) bool {
	if !t.DelaySpawning {
		return false
	}
	if role.IsCritical() {
		return false
	}
	if state.Count(role) < g.sched.MinimumCount(role.String()) {
		return false
	}
	return true
}

// SuppressesRenewal reports whether renewal commands are withheld this tick.
//
// The cheap-body rule is unconditional: a unit costing under the configured
// fraction of current capacity is always allowed to lapse, transition or
// not. Transition-based suppression additionally yields when a protected
// role is below its minimum count, since the expiring unit may be the last
// of it.
func (g *TransitionGovernor) SuppressesRenewal(t economy.CapacityTransition, state *colony.State) bool {
	if state.NearExpiryUnits == 0 {
		return false
	}

	cost := state.CheapestNearExpiryCost
	if cost > 0 && state.EnergyCapacity > 0 &&
		float64(cost) < g.cfg.CheapRenewalFraction*float64(state.EnergyCapacity) {
		return true
	}

	if !t.SuppressRenewal {
		return false
	}
	if g.anyRoleBelowMinimum(state) {
		return false
	}
	return true
}

func (g *TransitionGovernor) anyRoleBelowMinimum(state *colony.State) bool {
	for name, min := range g.sched.MinimumCounts {
		role, ok := colony.ParseRole(name)
		if !ok {
			continue
		}
		if state.Count(role) < min {
			return true
		}
	}
	return false
}
