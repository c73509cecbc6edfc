package spawn

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jappenzeller/colonybot/internal/domain/colony"
	"github.com/jappenzeller/colonybot/internal/domain/unit"
)

// Request is the single production command a scheduling pass may emit. The
// unit name doubles as the request identifier so the external action layer
// can correlate spawn results.
type Request struct {
	ID      string
	Role    colony.Role
	Loadout unit.Loadout
	Cost    int

	// Priority is the winning candidate's utility score, carried for
	// logging and diagnostics.
	Priority float64

	// Assignment is the remote site the unit is produced for, empty for
	// home roles.
	Assignment string
}

// NewRequest builds a request from the winning candidate. Cost is recorded
// from the loadout so it always round-trips with the part cost table.
func NewRequest(c *Candidate) *Request {
	return &Request{
		ID:         fmt.Sprintf("%s-%s", c.Role, uuid.NewString()[:8]),
		Role:       c.Role,
		Loadout:    c.Loadout,
		Cost:       c.Loadout.Cost(),
		Priority:   c.Utility,
		Assignment: c.Target,
	}
}
