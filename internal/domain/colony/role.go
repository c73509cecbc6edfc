package colony

// Role identifies the job a worker unit is produced for. It is a closed enum:
// the scheduler dispatches over it with exhaustive tables, so adding a role
// without extending those tables is a compile-time visible change.
type Role int

const (
	RoleHarvester Role = iota
	RoleHauler
	RoleUpgrader
	RoleBuilder
	RoleDefender
	RoleRemoteHarvester
	RoleRemoteHauler
	RoleReserver
	RoleScout
	RoleRemoteDefender
)

// AllRoles returns every role in declaration order.
func AllRoles() []Role {
	return []Role{
		RoleHarvester,
		RoleHauler,
		RoleUpgrader,
		RoleBuilder,
		RoleDefender,
		RoleRemoteHarvester,
		RoleRemoteHauler,
		RoleReserver,
		RoleScout,
		RoleRemoteDefender,
	}
}

var roleNames = map[Role]string{
	RoleHarvester:       "harvester",
	RoleHauler:          "hauler",
	RoleUpgrader:        "upgrader",
	RoleBuilder:         "builder",
	RoleDefender:        "defender",
	RoleRemoteHarvester: "remote-harvester",
	RoleRemoteHauler:    "remote-hauler",
	RoleReserver:        "reserver",
	RoleScout:           "scout",
	RoleRemoteDefender:  "remote-defender",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// ParseRole maps a stored role name back to its enum value.
// Unknown names return (0, false).
func ParseRole(name string) (Role, bool) {
	for role, n := range roleNames {
		if n == name {
			return role, true
		}
	}
	return 0, false
}

// IsExpansion reports whether the role operates in a remote site rather than
// the home colony. Expansion roles are gated behind a minimum colony level
// and require a resolved target site before they can be admitted.
func (r Role) IsExpansion() bool {
	switch r {
	case RoleRemoteHarvester, RoleRemoteHauler, RoleReserver, RoleScout, RoleRemoteDefender:
		return true
	}
	return false
}

// RequiresTarget reports whether a production request for this role must
// carry a remote site assignment.
func (r Role) RequiresTarget() bool {
	return r.IsExpansion()
}

// IsCritical reports whether the role keeps the colony's economy alive.
// Critical roles are never delayed by a capacity transition.
func (r Role) IsCritical() bool {
	switch r {
	case RoleHarvester, RoleHauler, RoleUpgrader:
		return true
	}
	return false
}

// rolePriority is the fixed tie-break table. Lower values win. It orders
// economic survival ahead of defense, and home roles ahead of expansion.
var rolePriority = map[Role]int{
	RoleHarvester:       0,
	RoleHauler:          1,
	RoleDefender:        2,
	RoleUpgrader:        3,
	RoleBuilder:         4,
	RoleRemoteHarvester: 5,
	RoleRemoteHauler:    6,
	RoleReserver:        7,
	RoleRemoteDefender:  8,
	RoleScout:           9,
}

// Priority returns the role's rank in the fixed tie-break table.
// It is used only to break utility-score ties, never as a primary ordering.
func (r Role) Priority() int {
	if p, ok := rolePriority[r]; ok {
		return p
	}
	return len(rolePriority)
}
