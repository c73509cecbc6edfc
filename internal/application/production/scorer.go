package production

import (
	"github.com/jappenzeller/colonybot/internal/domain/colony"
	"github.com/jappenzeller/colonybot/internal/infrastructure/config"
)

// incomeRatioFloor guards every division by income ratio. A colony with no
// income still scores finite (if very urgent) utilities.
const incomeRatioFloor = 0.01

// UtilityScorer turns (role, snapshot) into a non-negative urgency score.
// It is a pure function of its inputs: no clock, no store, no side effects.
//
// Two invariants hold for every role:
//   - utility is 0 whenever the role's deficit is <= 0
//   - utility never decreases when home threat rises, all else fixed
type UtilityScorer struct {
	cfg config.SchedulerConfig
}

// NewUtilityScorer creates a scorer with the given tuning
func NewUtilityScorer(cfg config.SchedulerConfig) *UtilityScorer {
	return &UtilityScorer{cfg: cfg}
}

// Score computes the utility of producing one unit of the role right now.
func (s *UtilityScorer) Score(role colony.Role, state *colony.State) float64 {
	deficit := state.Deficit(role)
	if deficit <= 0 {
		return 0
	}

	if role.IsExpansion() && !s.expansionUnlocked(state) {
		return 0
	}

	d := float64(deficit)
	ratio := state.IncomeRatio()
	if ratio < incomeRatioFloor {
		ratio = incomeRatioFloor
	}
	w := s.cfg.Weights

	switch role {
	case colony.RoleHarvester:
		// Scarcity inflates urgency: the lower the income ratio, the more
		// desperately the colony needs harvest throughput.
		return d * w.Harvester / ratio

	case colony.RoleHauler:
		if state.Count(colony.RoleHarvester) == 0 {
			// Nothing to haul until something harvests.
			return 0
		}
		mult := 1 + ratio
		if state.Count(colony.RoleHauler) == 0 && state.EnergyIncome > 0 {
			// Income with no logistics is energy rotting on the ground.
			mult = 10
		}
		return d * w.Hauler * mult

	case colony.RoleUpgrader:
		u := d * w.Upgrader * ratio
		if state.EnergyStored > s.cfg.StoredEnergyHighWater {
			u *= 1.5
		}
		return u

	case colony.RoleBuilder:
		if state.ConstructionSites == 0 {
			return 0
		}
		backlog := float64(state.ConstructionSites) / 5
		if backlog > 2 {
			backlog = 2
		}
		return d * w.Builder * ratio * backlog

	case colony.RoleDefender:
		if state.HomeThreat == 0 {
			return 0
		}
		return state.HomeThreat * w.Defender / float64(state.Count(colony.RoleDefender)+1)

	case colony.RoleRemoteHarvester:
		return d * w.Expansion * ratio

	case colony.RoleRemoteHauler:
		if state.Count(colony.RoleRemoteHarvester) == 0 {
			return 0
		}
		return d * w.Expansion * ratio

	case colony.RoleReserver:
		return d * w.Expansion * ratio

	case colony.RoleScout:
		return d * w.Scout

	case colony.RoleRemoteDefender:
		threat := state.MaxRemoteThreat()
		if threat == 0 {
			return 0
		}
		return threat * w.Defender * ratio / float64(state.Count(colony.RoleRemoteDefender)+1)
	}

	return 0
}

// expansionUnlocked gates all expansion roles behind a minimum colony level
// and a working home economy.
func (s *UtilityScorer) expansionUnlocked(state *colony.State) bool {
	if state.Level < s.cfg.ExpansionLevel {
		return false
	}
	if state.Count(colony.RoleHarvester) < s.cfg.ExpansionMinHarvesters {
		return false
	}
	if state.Count(colony.RoleHauler) < s.cfg.ExpansionMinHaulers {
		return false
	}
	return true
}
