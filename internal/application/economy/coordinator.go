package economy

import (
	"context"
	"fmt"
	"log"

	"github.com/jappenzeller/colonybot/internal/application/production"
	"github.com/jappenzeller/colonybot/internal/domain/colony"
	"github.com/jappenzeller/colonybot/internal/domain/economy"
	"github.com/jappenzeller/colonybot/internal/infrastructure/config"
)

// Coordinator is the low-frequency strategic layer: every refresh interval
// it detects the colony's phase, allocates the energy budget, derives
// workforce requirements, diagnoses the growth bottleneck, and persists the
// result for the per-tick scheduler to consume. It writes state only; it
// never emits production commands itself.
type Coordinator struct {
	cfg      config.EconomyConfig
	sched    config.SchedulerConfig
	store    economy.StrategyStore
	income   economy.IncomeSource
	governor *production.TransitionGovernor
	loadouts *production.LoadoutBuilder
}

// NewCoordinator creates a coordinator writing through the given store.
func NewCoordinator(
	cfg config.EconomyConfig,
	sched config.SchedulerConfig,
	governorCfg config.GovernorConfig,
	store economy.StrategyStore,
	income economy.IncomeSource,
) *Coordinator {
	return &Coordinator{
		cfg:      cfg,
		sched:    sched,
		store:    store,
		income:   income,
		governor: production.NewTransitionGovernor(governorCfg, sched),
		loadouts: production.NewLoadoutBuilder(),
	}
}

// Due reports whether the tick is a refresh tick.
func (c *Coordinator) Due(tick int64) bool {
	return tick%c.cfg.RefreshInterval == 0
}

// Refresh recomputes the colony's strategic state from the snapshot and
// persists it. The refreshed state is also returned for same-tick use,
// preserving the write-before-read ordering of refresh ticks.
func (c *Coordinator) Refresh(ctx context.Context, state *colony.State) (*economy.StrategicState, error) {
	if state == nil {
		return nil, fmt.Errorf("refresh requires a colony snapshot")
	}

	phase := c.detectPhase(state)
	budget := c.computeBudget(state, phase)
	workforce := c.computeWorkforce(state, budget, phase)
	transition := c.governor.Assess(state)
	bottleneck := c.diagnose(state, budget, workforce)

	strategic := &economy.StrategicState{
		Colony:              state.Name,
		UpdatedTick:         state.Tick,
		Phase:               phase,
		Budget:              budget,
		Workforce:           workforce,
		Bottleneck:          bottleneck,
		Recommendations:     c.recommend(state, budget, bottleneck),
		ProgressToNextLevel: state.Progress,
		Transition:          transition,
	}

	if err := c.store.Save(ctx, strategic); err != nil {
		// A failed write leaves the previous (stale but tolerated) state in
		// place; the refresh itself still succeeds for same-tick readers.
		log.Printf("[%s] failed to persist strategic state: %v", state.Name, err)
	}

	log.Printf("[%s] strategic refresh at tick %d: phase=%s bottleneck=%s income=%.1f/t efficiency=%.0f%%",
		state.Name, state.Tick, phase, bottleneckLabel(bottleneck), budget.IncomePerTick, budget.HarvestEfficiency*100)

	return strategic, nil
}

// detectPhase classifies the colony. Emergencies trump level thresholds.
func (c *Coordinator) detectPhase(state *colony.State) economy.Phase {
	switch {
	case state.HostileDPS > c.cfg.EmergencyHostileDPS:
		return economy.PhaseEmergency
	case state.SpawnerDamaged:
		return economy.PhaseEmergency
	case state.Count(colony.RoleHarvester) == 0:
		return economy.PhaseEmergency
	case state.Level <= c.cfg.BootstrapMaxLevel:
		return economy.PhaseBootstrap
	case state.Level <= c.cfg.DevelopingMaxLevel:
		return economy.PhaseDeveloping
	default:
		return economy.PhaseStable
	}
}

func bottleneckLabel(b economy.Bottleneck) string {
	if b == economy.BottleneckNone {
		return "none"
	}
	return string(b)
}
