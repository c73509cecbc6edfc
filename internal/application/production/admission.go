package production

import (
	"github.com/jappenzeller/colonybot/internal/domain/colony"
	"github.com/jappenzeller/colonybot/internal/domain/economy"
	"github.com/jappenzeller/colonybot/internal/domain/spawn"
)

// Rejection records why a candidate was dropped at admission, for logging
// and metrics only.
type Rejection struct {
	Role   colony.Role
	Reason string
}

// Rejection reasons
const (
	ReasonZeroUtility  = "zero-utility"
	ReasonNoLoadout    = "no-loadout"
	ReasonUnaffordable = "unaffordable"
	ReasonNoTarget     = "no-target"
	ReasonGovernorHold = "governor-hold"
)

// AdmissionFilter discards candidates the colony cannot or should not act
// on, then picks the single winner: utility descending, fixed priority
// table on exact ties.
type AdmissionFilter struct {
	governor *TransitionGovernor
}

// NewAdmissionFilter creates an admission filter backed by the governor
func NewAdmissionFilter(governor *TransitionGovernor) *AdmissionFilter {
	return &AdmissionFilter{governor: governor}
}

// Admit filters the candidates and returns the winner, if any, plus the
// rejections made along the way.
func (f *AdmissionFilter) Admit(
	candidates []*spawn.Candidate,
	state *colony.State,
	transition economy.CapacityTransition,
) (*spawn.Candidate, []Rejection) {
	var winner *spawn.Candidate
	var rejections []Rejection

	for _, c := range candidates {
		if c.Utility <= 0 {
			rejections = append(rejections, Rejection{c.Role, ReasonZeroUtility})
			continue
		}
		if c.Loadout.Empty() {
			rejections = append(rejections, Rejection{c.Role, ReasonNoLoadout})
			continue
		}
		if !c.Affordable(state.EnergyAvailable) {
			rejections = append(rejections, Rejection{c.Role, ReasonUnaffordable})
			continue
		}
		if c.Role.RequiresTarget() && c.Target == "" {
			rejections = append(rejections, Rejection{c.Role, ReasonNoTarget})
			continue
		}
		if f.governor.DelaysSpawn(transition, c.Role, state) {
			rejections = append(rejections, Rejection{c.Role, ReasonGovernorHold})
			continue
		}

		if c.Better(winner) {
			winner = c
		}
	}

	return winner, rejections
}

// BuildRequest turns the winning candidate into the tick's single
// production request.
func (f *AdmissionFilter) BuildRequest(winner *spawn.Candidate) *spawn.Request {
	if winner == nil {
		return nil
	}
	return spawn.NewRequest(winner)
}
