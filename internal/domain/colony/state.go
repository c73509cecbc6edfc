package colony

// State is the per-tick snapshot of a single colony. It is produced fresh
// every tick by an external world-state collaborator and never mutated by
// the decision core. Zero values are safe: a missing field reads as "none",
// and every consumer degrades to producing nothing rather than failing.
type State struct {
	Name string
	Tick int64

	// Level is the colony's discrete development tier (1..8). It gates
	// expansion roles and structure availability.
	Level int

	// Progress is the fraction [0,1] toward the next level.
	Progress float64

	EnergyAvailable int
	EnergyCapacity  int
	EnergyStored    int

	// EnergyIncome is the measured harvest rate per tick;
	// MaxEnergyIncome is the theoretical ceiling given the colony's sources.
	EnergyIncome    float64
	MaxEnergyIncome float64

	// Counts and Targets hold the current and desired number of units per
	// role. Either map may be nil; use Count/Target for nil-safe access.
	Counts  map[Role]int
	Targets map[Role]int

	// HomeThreat is the estimated hostile presence in the home colony.
	// HostileDPS is the aggregate damage per tick of visible hostiles.
	HomeThreat float64
	HostileDPS float64

	// SpawnerDamaged is set when the production facility has taken critical
	// damage. SpawnerBusy is set while it is mid-production.
	SpawnerDamaged bool
	SpawnerBusy    bool

	ConstructionSites int

	// CriticalSitesMissing is set when required infrastructure for the
	// current level has not been placed or completed.
	CriticalSitesMissing bool

	// HasStorage reports whether a central resource-collection point exists.
	HasStorage bool

	// EnergyOnGround is energy piled at sources awaiting pickup;
	// StorageFreeCapacity is the free downstream capacity available to
	// absorb it. Both feed the transport-bottleneck diagnosis.
	EnergyOnGround      int
	StorageFreeCapacity int

	// NearExpiryUnits counts units within the renewal window of expiring.
	NearExpiryUnits int

	// CheapestNearExpiryCost is the body cost of the cheapest near-expiry
	// unit, used by the renewal suppression rules. Zero when none.
	CheapestNearExpiryCost int

	// ComputeBucket is the remaining compute-budget reserve of the host.
	ComputeBucket int

	// Remotes lists the remote sites monitored by this colony, in the fixed
	// order target resolution scans them.
	Remotes []RemoteSite

	// Capacity holds in-progress capacity-expanding construction, if any.
	Capacity CapacityWork
}

// CapacityWork describes in-progress construction that will raise the
// colony's maximum energy capacity when it completes.
type CapacityWork struct {
	// RemainingCost is the construction energy still to be invested.
	RemainingCost int

	// FutureCapacity is the energy capacity once construction completes.
	// Always >= the snapshot's EnergyCapacity when RemainingCost > 0.
	FutureCapacity int

	// BuilderWorkParts is the sum of work parts across units actively
	// building the capacity sites.
	BuilderWorkParts int

	// UnitsBuilding counts those units.
	UnitsBuilding int
}

// Active reports whether capacity-expanding construction is in progress.
func (c CapacityWork) Active() bool {
	return c.RemainingCost > 0 && c.FutureCapacity > 0
}

// Count returns the current number of units filling the role.
func (s *State) Count(r Role) int {
	if s == nil || s.Counts == nil {
		return 0
	}
	return s.Counts[r]
}

// Target returns the desired number of units for the role.
func (s *State) Target(r Role) int {
	if s == nil || s.Targets == nil {
		return 0
	}
	return s.Targets[r]
}

// Deficit returns target minus current for the role. Negative values mean
// the role is overstaffed.
func (s *State) Deficit(r Role) int {
	return s.Target(r) - s.Count(r)
}

// IncomeRatio returns income relative to the theoretical maximum, guarded
// against a zero ceiling.
func (s *State) IncomeRatio() float64 {
	if s == nil {
		return 0
	}
	max := s.MaxEnergyIncome
	if max < 1 {
		max = 1
	}
	return s.EnergyIncome / max
}

// TotalUnits returns the number of living units across all roles.
func (s *State) TotalUnits() int {
	if s == nil {
		return 0
	}
	total := 0
	for _, n := range s.Counts {
		total += n
	}
	return total
}

// MaxRemoteThreat returns the highest threat level across monitored remote
// sites, or 0 when there are none.
func (s *State) MaxRemoteThreat() float64 {
	if s == nil {
		return 0
	}
	max := 0.0
	for _, site := range s.Remotes {
		if site.Threat > max {
			max = site.Threat
		}
	}
	return max
}
