package production

import (
	"github.com/jappenzeller/colonybot/internal/domain/colony"
	"github.com/jappenzeller/colonybot/internal/domain/economy"
)

// passCache memoizes derived values for exactly one scheduling pass. It is
// created at the top of RunTick and discarded with it, so memoized values
// can never leak across ticks.
type passCache struct {
	state *colony.State

	emergency  *bool
	transition *economy.CapacityTransition
}

func newPassCache(state *colony.State) *passCache {
	return &passCache{state: state}
}

// Emergency reports whether the colony has zero harvesters or zero haulers.
// In that situation loadouts are budgeted against the energy actually
// available instead of capacity the dead economy cannot refill.
func (c *passCache) Emergency() bool {
	if c.emergency == nil {
		v := c.state.Count(colony.RoleHarvester) == 0 || c.state.Count(colony.RoleHauler) == 0
		c.emergency = &v
	}
	return *c.emergency
}

// Transition returns the governor's assessment of the snapshot, computed at
// most once per pass.
func (c *passCache) Transition(g *TransitionGovernor) economy.CapacityTransition {
	if c.transition == nil {
		t := g.Assess(c.state)
		c.transition = &t
	}
	return *c.transition
}
