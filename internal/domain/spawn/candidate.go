package spawn

import (
	"github.com/jappenzeller/colonybot/internal/domain/colony"
	"github.com/jappenzeller/colonybot/internal/domain/unit"
)

// Candidate is one scored production option under consideration within a
// single tick. Candidates are created and discarded inside one scheduling
// pass and never persisted.
type Candidate struct {
	Role    colony.Role
	Utility float64
	Loadout unit.Loadout
	Cost    int

	// Target is the resolved remote site name for expansion roles, empty
	// otherwise. Expansion candidates without a target are inadmissible.
	Target string
}

// Affordable reports whether the candidate fits the currently available
// energy.
func (c *Candidate) Affordable(energyAvailable int) bool {
	return c.Cost <= energyAvailable
}

// Viable reports whether the candidate can compete at admission at all:
// positive utility and a non-empty loadout.
func (c *Candidate) Viable() bool {
	return c.Utility > 0 && !c.Loadout.Empty()
}

// Better reports whether this candidate outranks other: utility descending,
// with the fixed role priority table breaking exact ties.
func (c *Candidate) Better(other *Candidate) bool {
	if other == nil {
		return true
	}
	if c.Utility != other.Utility {
		return c.Utility > other.Utility
	}
	return c.Role.Priority() < other.Role.Priority()
}
