package simulation

import (
	"context"
	"fmt"

	appeconomy "github.com/jappenzeller/colonybot/internal/application/economy"
	"github.com/jappenzeller/colonybot/internal/application/production"
	"github.com/jappenzeller/colonybot/internal/adapters/persistence"
	"github.com/jappenzeller/colonybot/internal/adapters/telemetry"
	"github.com/jappenzeller/colonybot/internal/domain/colony"
	"github.com/jappenzeller/colonybot/internal/domain/spawn"
	"github.com/jappenzeller/colonybot/internal/infrastructure/config"
)

// Harness wires the real scheduler and coordinator to a simulated world and
// runs them for many ticks. It is the repository's death-spiral detector:
// long runs from hostile starting states must never leave the colony
// without both harvesters and haulers for more than a brief window.
type Harness struct {
	World       *World
	Scheduler   *production.Scheduler
	Coordinator *appeconomy.Coordinator
	Tracker     *telemetry.IncomeTracker
}

// NewHarness builds a harness over an in-memory strategy store.
func NewHarness(cfg *config.Config, world *World) *Harness {
	store := persistence.NewMemoryStrategyStore()
	tracker := telemetry.NewIncomeTracker(cfg.Economy.TelemetryWindow)

	return &Harness{
		World:       world,
		Scheduler:   production.NewScheduler(cfg.Scheduler, cfg.Governor, store, world, nil),
		Coordinator: appeconomy.NewCoordinator(cfg.Economy, cfg.Scheduler, cfg.Governor, store, tracker),
		Tracker:     tracker,
	}
}

// RunReport summarizes a harness run.
type RunReport struct {
	Ticks  int
	Spawns int

	// MaxDeadStreak is the longest run of consecutive ticks with zero
	// harvesters and zero haulers simultaneously.
	MaxDeadStreak int

	// FinalState is the last snapshot observed.
	FinalState *colony.State
}

// Run drives the colony for the given number of ticks.
func (h *Harness) Run(ctx context.Context, ticks int) (*RunReport, error) {
	report := &RunReport{Ticks: ticks}
	deadStreak := 0

	for i := 0; i < ticks; i++ {
		snapshot := h.World.Snapshot()
		h.Tracker.Record(snapshot.Name, snapshot.EnergyIncome)

		// The strategic write strictly precedes the scheduler's read on
		// refresh ticks.
		if h.Coordinator.Due(snapshot.Tick) {
			if _, err := h.Coordinator.Refresh(ctx, snapshot); err != nil {
				return nil, fmt.Errorf("strategic refresh at tick %d: %w", snapshot.Tick, err)
			}
		}

		result, err := h.Scheduler.RunTick(ctx, snapshot)
		if err != nil {
			return nil, fmt.Errorf("scheduling pass at tick %d: %w", snapshot.Tick, err)
		}
		if result.Spawned != nil && result.SpawnStatus == spawn.StatusOK {
			report.Spawns++
		}

		h.World.Step()

		if h.World.Count(colony.RoleHarvester) == 0 && h.World.Count(colony.RoleHauler) == 0 {
			deadStreak++
			if deadStreak > report.MaxDeadStreak {
				report.MaxDeadStreak = deadStreak
			}
		} else {
			deadStreak = 0
		}
	}

	report.FinalState = h.World.Snapshot()
	return report, nil
}
