package production

import (
	"context"
	"errors"
	"log"

	"github.com/jappenzeller/colonybot/internal/domain/colony"
	"github.com/jappenzeller/colonybot/internal/domain/economy"
	"github.com/jappenzeller/colonybot/internal/domain/spawn"
	"github.com/jappenzeller/colonybot/internal/infrastructure/config"
)

// MetricsRecorder receives the scheduler's decisions. A nil recorder
// disables metrics entirely.
type MetricsRecorder interface {
	RecordTick(state *colony.State)
	RecordSpawn(colonyName string, role colony.Role, status string)
	RecordRenewal(colonyName string, status string)
	RecordRejection(colonyName string, reason string)
}

// Scheduler runs the complete production decision pipeline for one colony
// tick: score every role, compose loadouts, resolve expansion targets,
// filter at admission, emit at most one spawn command and at most one
// renewal command. Each pass is a pure evaluation of the snapshot and the
// (possibly stale) strategic state; commands are only issued after the
// whole pipeline has been evaluated.
type Scheduler struct {
	scorer   *UtilityScorer
	loadouts *LoadoutBuilder
	targets  *TargetResolver
	governor *TransitionGovernor
	filter   *AdmissionFilter
	executor *ProductionExecutor
	store    economy.StrategyStore
	metrics  MetricsRecorder
	cfg      config.SchedulerConfig
}

// NewScheduler wires the production pipeline. metrics may be nil.
func NewScheduler(
	cfg config.SchedulerConfig,
	governorCfg config.GovernorConfig,
	store economy.StrategyStore,
	actions spawn.Actions,
	metrics MetricsRecorder,
) *Scheduler {
	governor := NewTransitionGovernor(governorCfg, cfg)
	return &Scheduler{
		scorer:   NewUtilityScorer(cfg),
		loadouts: NewLoadoutBuilder(),
		targets:  NewTargetResolver(),
		governor: governor,
		filter:   NewAdmissionFilter(governor),
		executor: NewProductionExecutor(actions),
		store:    store,
		metrics:  metrics,
		cfg:      cfg,
	}
}

// TickResult reports what one scheduling pass decided and how the action
// interface answered.
type TickResult struct {
	Spawned       *spawn.Request
	SpawnStatus   spawn.ActionStatus
	RenewalIssued bool
	RenewalStatus spawn.ActionStatus
	Rejections    []Rejection
	Strategic     *economy.StrategicState
}

// RunTick executes one full scheduling pass over the snapshot.
func (s *Scheduler) RunTick(ctx context.Context, state *colony.State) (*TickResult, error) {
	if state == nil {
		return &TickResult{}, nil
	}
	if s.metrics != nil {
		s.metrics.RecordTick(state)
	}

	strategic := s.loadStrategic(ctx, state.Name)
	state = applyStrategic(state, strategic)
	cache := newPassCache(state)
	transition := cache.Transition(s.governor)

	candidates := s.buildCandidates(state, cache)
	winner, rejections := s.filter.Admit(candidates, state, transition)

	result := &TickResult{
		Rejections: rejections,
		Strategic:  strategic,
	}
	if s.metrics != nil {
		for _, r := range rejections {
			s.metrics.RecordRejection(state.Name, r.Reason)
		}
	}

	// The pipeline is fully evaluated; only now do commands go out.
	if winner != nil {
		req := s.filter.BuildRequest(winner)
		status, err := s.executor.Spawn(ctx, state.Name, req)
		if err != nil {
			// ActionRejected is non-fatal: log, report, move on.
			log.Printf("[%s] spawn command failed: %v", state.Name, err)
		}
		result.Spawned = req
		result.SpawnStatus = status
		if s.metrics != nil {
			s.metrics.RecordSpawn(state.Name, req.Role, status.String())
		}
	}

	if s.shouldRenew(state, transition) {
		status, err := s.executor.Renew(ctx, state.Name)
		if err != nil {
			log.Printf("[%s] renewal command failed: %v", state.Name, err)
		}
		result.RenewalIssued = true
		result.RenewalStatus = status
		if s.metrics != nil {
			s.metrics.RecordRenewal(state.Name, status.String())
		}
	}

	return result, nil
}

// buildCandidates scores every role and composes its loadout and target.
// Roles scoring zero are dropped here; the admission filter handles the
// rest of the taxonomy.
func (s *Scheduler) buildCandidates(state *colony.State, cache *passCache) []*spawn.Candidate {
	emergency := cache.Emergency()
	budget := state.EnergyCapacity
	if emergency {
		// A dead economy never refills the spawner; plan against what is
		// actually in the tank.
		budget = state.EnergyAvailable
	}

	var candidates []*spawn.Candidate
	for _, role := range colony.AllRoles() {
		utility := s.scorer.Score(role, state)
		if utility <= 0 {
			continue
		}

		loadout := s.loadouts.Build(role, budget, emergency)
		c := &spawn.Candidate{
			Role:    role,
			Utility: utility,
			Loadout: loadout,
			Cost:    loadout.Cost(),
		}
		if role.RequiresTarget() {
			if target, ok := s.targets.Resolve(role, state); ok {
				c.Target = target
			}
		}
		candidates = append(candidates, c)
	}
	return candidates
}

// shouldRenew decides the independent renewal command: there must be a
// near-expiry unit and the governor must not be suppressing renewal.
func (s *Scheduler) shouldRenew(state *colony.State, transition economy.CapacityTransition) bool {
	if state.NearExpiryUnits == 0 {
		return false
	}
	return !s.governor.SuppressesRenewal(transition, state)
}

// applyStrategic folds the cached strategic state into the snapshot. The
// world-state collaborator may omit per-role targets; the coordinator's
// workforce assessment then stands in. The original snapshot is never
// mutated.
func applyStrategic(state *colony.State, strategic *economy.StrategicState) *colony.State {
	if state.Targets != nil || strategic == nil || strategic.Workforce.Targets == nil {
		return state
	}
	patched := *state
	patched.Targets = strategic.Workforce.Targets
	return &patched
}

// loadStrategic reads the colony's strategic state, degrading to safe
// defaults when the store has nothing usable. Staleness up to the refresh
// interval is expected and tolerated.
func (s *Scheduler) loadStrategic(ctx context.Context, colonyName string) *economy.StrategicState {
	if s.store == nil {
		return economy.DefaultStrategicState(colonyName)
	}
	state, err := s.store.Load(ctx, colonyName)
	if err != nil {
		if !errors.Is(err, economy.ErrStateNotFound) {
			log.Printf("[%s] strategic state unavailable, using defaults: %v", colonyName, err)
		}
		return economy.DefaultStrategicState(colonyName)
	}
	if !state.Sane() {
		log.Printf("[%s] strategic state failed sanity check, using defaults", colonyName)
		return economy.DefaultStrategicState(colonyName)
	}
	return state
}
