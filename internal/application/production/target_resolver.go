package production

import (
	"github.com/jappenzeller/colonybot/internal/domain/colony"
)

// TargetResolver assigns expansion candidates to remote sites. It scans the
// snapshot's sites in their fixed order and takes the first whose coverage
// falls short of the role's need. First match, not globally optimal:
// misassignments correct themselves lazily on later production passes.
type TargetResolver struct{}

// NewTargetResolver creates a target resolver
func NewTargetResolver() *TargetResolver {
	return &TargetResolver{}
}

// Resolve returns the name of the first remote site needing the role, or
// ("", false) when no site qualifies. Non-expansion roles never resolve.
func (r *TargetResolver) Resolve(role colony.Role, state *colony.State) (string, bool) {
	if !role.RequiresTarget() {
		return "", false
	}

	for _, site := range state.Remotes {
		if r.needs(role, site) {
			return site.Name, true
		}
	}
	return "", false
}

func (r *TargetResolver) needs(role colony.Role, site colony.RemoteSite) bool {
	switch role {
	case colony.RoleRemoteHarvester:
		return site.NeedsHarvester()
	case colony.RoleRemoteHauler:
		return site.NeedsHauler()
	case colony.RoleReserver:
		return site.NeedsReservation()
	case colony.RoleScout:
		return site.NeedsScout()
	case colony.RoleRemoteDefender:
		return site.NeedsDefender()
	}
	return false
}
