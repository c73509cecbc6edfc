package economy

import "github.com/jappenzeller/colonybot/internal/domain/colony"

// StrategicState is the long-lived strategic memory of one colony, written
// by the economic coordinator every refresh interval and read by the
// per-tick scheduler. Readers must tolerate staleness up to one refresh
// interval; a missing state degrades to DefaultStrategicState, never an
// error.
type StrategicState struct {
	Colony      string
	UpdatedTick int64

	Phase      Phase
	Budget     EnergyBudget
	Workforce  WorkforceRequirements
	Bottleneck Bottleneck

	// Recommendations is informational diagnostic output only; nothing in
	// the decision pipeline consumes it.
	Recommendations []string

	// ProgressToNextLevel is the fraction [0,1] toward the next colony level
	// at the time of the refresh.
	ProgressToNextLevel float64

	Transition CapacityTransition
}

// EnergyBudget is the coordinator's view of energy flow and how it should
// be allocated across spending purposes.
type EnergyBudget struct {
	IncomePerTick     float64
	MaxIncomePerTick  float64
	HarvestEfficiency float64
	Allocations       Allocation
}

// Allocation splits the energy budget across spending purposes, in percent.
// Each valid row sums to 100.
type Allocation struct {
	Spawn   int
	Upgrade int
	Build   int
	Repair  int
	Reserve int
}

// Total returns the sum of all allocation percentages.
func (a Allocation) Total() int {
	return a.Spawn + a.Upgrade + a.Build + a.Repair + a.Reserve
}

// WorkforceRequirements captures the coordinator's per-role staffing
// assessment: how many units each role needs, the resulting targets, and the
// current gaps (target minus current; positive means understaffed).
type WorkforceRequirements struct {
	Targets map[colony.Role]int
	Gaps    map[colony.Role]int
}

// Gap returns the staffing gap for the role, nil-safe.
func (w WorkforceRequirements) Gap(r colony.Role) int {
	if w.Gaps == nil {
		return 0
	}
	return w.Gaps[r]
}

// PositiveGaps returns the number of roles currently understaffed.
func (w WorkforceRequirements) PositiveGaps() int {
	n := 0
	for _, g := range w.Gaps {
		if g > 0 {
			n++
		}
	}
	return n
}

// CapacityTransition records an in-progress growth of maximum energy
// capacity and the production restraint it implies. FutureCapacity is always
// >= CurrentCapacity while a transition is active.
type CapacityTransition struct {
	InTransition    bool
	CurrentCapacity int
	FutureCapacity  int
	UnitsBuilding   int
	EtaTicks        float64
	SuppressRenewal bool
	DelaySpawning   bool
}

// DefaultStrategicState returns the conservative fallback used whenever a
// colony has no persisted state yet: equal allocation across purposes, no
// suppression, no delay. Consumers treat it exactly like a stored state.
func DefaultStrategicState(colonyName string) *StrategicState {
	return &StrategicState{
		Colony: colonyName,
		Phase:  PhaseBootstrap,
		Budget: EnergyBudget{
			Allocations: Allocation{Spawn: 20, Upgrade: 20, Build: 20, Repair: 20, Reserve: 20},
		},
		Bottleneck: BottleneckNone,
	}
}

// Sane reports whether the state can be consumed as-is. Unknown phases or
// broken allocation rows are rejected so a corrupted store row falls back to
// defaults instead of steering the scheduler.
func (s *StrategicState) Sane() bool {
	if s == nil || !s.Phase.Valid() {
		return false
	}
	if s.Budget.Allocations.Total() != 100 {
		return false
	}
	if s.Transition.InTransition && s.Transition.FutureCapacity < s.Transition.CurrentCapacity {
		return false
	}
	return true
}
