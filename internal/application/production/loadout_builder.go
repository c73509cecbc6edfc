package production

import (
	"github.com/jappenzeller/colonybot/internal/domain/colony"
	"github.com/jappenzeller/colonybot/internal/domain/unit"
)

// LoadoutBuilder turns (role, energy budget, emergency flag) into an ordered
// part composition. It is deterministic: identical inputs always produce the
// identical loadout, which the cost round-trip tests rely on.
//
// The emergency flag caps compositions at their minimum-viable tier: when
// the economy is dead the colony needs a cheap unit now, not a large one
// after a refill that will never come.
type LoadoutBuilder struct{}

// NewLoadoutBuilder creates a loadout builder
func NewLoadoutBuilder() *LoadoutBuilder {
	return &LoadoutBuilder{}
}

// roleMinimumBudget is the energy below which no viable body exists for the
// role. Build returns an empty loadout under it.
var roleMinimumBudget = map[colony.Role]int{
	colony.RoleHarvester:       200,
	colony.RoleHauler:          100,
	colony.RoleUpgrader:        200,
	colony.RoleBuilder:         200,
	colony.RoleDefender:        180,
	colony.RoleRemoteHarvester: 250,
	colony.RoleRemoteHauler:    150,
	colony.RoleReserver:        650,
	colony.RoleScout:           50,
	colony.RoleRemoteDefender:  400,
}

// MinimumBudget returns the cheapest viable body cost for the role.
func MinimumBudget(role colony.Role) int {
	return roleMinimumBudget[role]
}

// Build composes a loadout for the role within the budget. An empty loadout
// means the budget cannot produce a viable unit.
func (b *LoadoutBuilder) Build(role colony.Role, budget int, emergency bool) unit.Loadout {
	if budget < roleMinimumBudget[role] {
		return nil
	}
	if emergency {
		budget = roleMinimumBudget[role]
	}

	switch role {
	case colony.RoleHarvester:
		return b.cappedWorker(budget, 5, false)
	case colony.RoleUpgrader:
		return b.cappedWorker(budget, 8, false)
	case colony.RoleBuilder:
		return b.balancedWorker(budget, 3)
	case colony.RoleHauler:
		return b.pairedHauler(budget, 25)
	case colony.RoleRemoteHarvester:
		return b.cappedWorker(budget, 5, true)
	case colony.RoleRemoteHauler:
		return b.pairedHauler(budget, 20)
	case colony.RoleDefender:
		return b.defenderTier(budget)
	case colony.RoleRemoteDefender:
		return b.remoteDefenderTier(budget)
	case colony.RoleReserver:
		return b.reserverTier(budget)
	case colony.RoleScout:
		return unit.Loadout{unit.PartMove}
	}

	return nil
}

// cappedWorker implements capped incremental stacking: work parts up to the
// cap, one carry support part, then moves counted against the other parts.
// Remote workers take a full move part per other part; home workers, who
// operate next to the spawner, take half.
func (b *LoadoutBuilder) cappedWorker(budget, workCap int, fullMove bool) unit.Loadout {
	best := unit.Loadout(nil)
	for works := 1; works <= workCap; works++ {
		others := works + 1 // work parts plus one carry
		moves := (others + 1) / 2
		if fullMove {
			moves = others
		}

		var body unit.Loadout
		body = body.Repeat(unit.PartWork, works)
		body = append(body, unit.PartCarry)
		body = body.Repeat(unit.PartMove, moves)

		if body.Cost() > budget {
			break
		}
		best = body
	}

	// Minimum-viable fallback: never emit fewer than three parts.
	if len(best) < 3 {
		fallback := unit.Loadout{unit.PartWork, unit.PartCarry, unit.PartMove}
		if fallback.Cost() > budget {
			return nil
		}
		return fallback
	}
	return best
}

// balancedWorker stacks work/carry pairs with matching moves, for roles that
// alternate between consuming and fetching energy.
func (b *LoadoutBuilder) balancedWorker(budget, pairCap int) unit.Loadout {
	pairs := budget / 200 // one pair plus its move costs 200
	if pairs < 1 {
		return nil
	}
	if pairs > pairCap {
		pairs = pairCap
	}

	var body unit.Loadout
	body = body.Repeat(unit.PartWork, pairs)
	body = body.Repeat(unit.PartCarry, pairs)
	body = body.Repeat(unit.PartMove, pairs)
	return body
}

// maxBodyParts is the hard cap on parts in a single unit.
const maxBodyParts = 50

// pairedHauler implements the paired repeating pattern: carry and move
// alternating until the pair cap, the body part cap, or the budget runs out.
func (b *LoadoutBuilder) pairedHauler(budget, pairCap int) unit.Loadout {
	pairs := budget / 100 // carry + move
	if pairs < 1 {
		return nil
	}
	if pairs > pairCap {
		pairs = pairCap
	}
	if pairs*2 > maxBodyParts {
		pairs = maxBodyParts / 2
	}

	var body unit.Loadout
	for i := 0; i < pairs; i++ {
		body = append(body, unit.PartCarry, unit.PartMove)
	}
	return body
}

// defenderTier selects a discrete melee loadout by budget threshold.
func (b *LoadoutBuilder) defenderTier(budget int) unit.Loadout {
	switch {
	case budget >= 770:
		var body unit.Loadout
		body = body.Repeat(unit.PartTough, 4)
		body = body.Repeat(unit.PartAttack, 6)
		body = body.Repeat(unit.PartMove, 5)
		return body
	case budget >= 410:
		var body unit.Loadout
		body = body.Repeat(unit.PartTough, 2)
		body = body.Repeat(unit.PartAttack, 3)
		body = body.Repeat(unit.PartMove, 3)
		return body
	default:
		return unit.Loadout{unit.PartAttack, unit.PartMove, unit.PartMove}
	}
}

// remoteDefenderTier selects a discrete ranged loadout by budget threshold.
func (b *LoadoutBuilder) remoteDefenderTier(budget int) unit.Loadout {
	switch {
	case budget >= 900:
		var body unit.Loadout
		body = body.Repeat(unit.PartRanged, 3)
		body = append(body, unit.PartHeal)
		body = body.Repeat(unit.PartMove, 4)
		return body
	default:
		return unit.Loadout{unit.PartRanged, unit.PartRanged, unit.PartMove, unit.PartMove}
	}
}

// reserverTier selects a discrete claim loadout by budget threshold.
func (b *LoadoutBuilder) reserverTier(budget int) unit.Loadout {
	switch {
	case budget >= 1300:
		return unit.Loadout{unit.PartClaim, unit.PartClaim, unit.PartMove, unit.PartMove}
	default:
		return unit.Loadout{unit.PartClaim, unit.PartMove}
	}
}
