package economy

import (
	"math"

	"github.com/jappenzeller/colonybot/internal/domain/colony"
	"github.com/jappenzeller/colonybot/internal/domain/economy"
	"github.com/jappenzeller/colonybot/internal/domain/unit"
)

// haulRoundTripTicks approximates one hauler round trip between sources and
// the spawner complex.
const haulRoundTripTicks = 50

// computeWorkforce derives per-role unit targets from the budget allocation
// and the per-unit capability a loadout built at current capacity delivers.
func (c *Coordinator) computeWorkforce(state *colony.State, budget economy.EnergyBudget, phase economy.Phase) economy.WorkforceRequirements {
	capacity := state.EnergyCapacity

	targets := make(map[colony.Role]int, len(colony.AllRoles()))

	// Harvesters: enough work parts to saturate the sources.
	harvestPerUnit := c.unitWorkParts(colony.RoleHarvester, capacity) * unit.WorkPower
	targets[colony.RoleHarvester] = clamp(ceilDiv(budget.MaxIncomePerTick, float64(harvestPerUnit)), 1, 8)

	// Haulers: enough carry throughput for the measured income.
	carryPerUnit := c.unitCarryCap(colony.RoleHauler, capacity)
	targets[colony.RoleHauler] = clamp(ceilDiv(budget.IncomePerTick*haulRoundTripTicks, float64(carryPerUnit)), 1, 6)

	// Upgraders: sized by the upgrade slice of the budget. One work part
	// consumes one energy per tick upgrading.
	upgradeEnergy := budget.IncomePerTick * float64(budget.Allocations.Upgrade) / 100
	upgraderFloor := 1
	if phase == economy.PhaseEmergency {
		upgraderFloor = 0
	}
	targets[colony.RoleUpgrader] = clamp(ceilDiv(upgradeEnergy, float64(c.unitWorkParts(colony.RoleUpgrader, capacity))), upgraderFloor, 4)

	// Builders: only with a backlog, sized by the build slice.
	if state.ConstructionSites > 0 {
		buildEnergy := budget.IncomePerTick * float64(budget.Allocations.Build) / 100
		buildPerUnit := c.unitWorkParts(colony.RoleBuilder, capacity) * unit.BuildPower
		targets[colony.RoleBuilder] = clamp(ceilDiv(buildEnergy, float64(buildPerUnit)), 1, 3)
	}

	// Defenders: scale with threat.
	if state.HomeThreat > 0 {
		targets[colony.RoleDefender] = clamp(1+int(state.HomeThreat/200), 1, 3)
	}

	// Expansion staffing from remote-site needs, once unlocked.
	if state.Level >= c.sched.ExpansionLevel {
		c.remoteTargets(state, targets)
	}

	gaps := make(map[colony.Role]int, len(targets))
	for role, target := range targets {
		gaps[role] = target - state.Count(role)
	}

	return economy.WorkforceRequirements{Targets: targets, Gaps: gaps}
}

func (c *Coordinator) remoteTargets(state *colony.State, targets map[colony.Role]int) {
	harvesters, haulers, reservers, scouts, defenders := 0, 0, 0, 0, 0
	for _, site := range state.Remotes {
		if site.Threat == 0 {
			harvesters += site.Sources
			haulers += site.TransportCeiling()
		}
		if site.NeedsReservation() {
			reservers++
		}
		if site.NeedsScout() {
			scouts++
		}
		if site.NeedsDefender() {
			defenders++
		}
	}
	targets[colony.RoleRemoteHarvester] = harvesters
	targets[colony.RoleRemoteHauler] = haulers
	targets[colony.RoleReserver] = reservers
	if scouts > 0 {
		targets[colony.RoleScout] = 1
	}
	targets[colony.RoleRemoteDefender] = defenders
}

// unitWorkParts returns the work parts of the role's loadout at the given
// budget, floored at one so capability math never divides by zero.
func (c *Coordinator) unitWorkParts(role colony.Role, budget int) int {
	loadout := c.loadouts.Build(role, budget, false)
	if parts := loadout.WorkParts(); parts > 0 {
		return parts
	}
	return 1
}

// unitCarryCap returns the carry capacity of the role's loadout at the
// given budget, floored at one carry part's worth.
func (c *Coordinator) unitCarryCap(role colony.Role, budget int) int {
	loadout := c.loadouts.Build(role, budget, false)
	if cap := loadout.CarryCap(); cap > 0 {
		return cap
	}
	return unit.CarryCapacity
}

func ceilDiv(num, den float64) int {
	if den <= 0 {
		return 0
	}
	return int(math.Ceil(num / den))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
