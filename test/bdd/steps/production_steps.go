package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/jappenzeller/colonybot/internal/adapters/persistence"
	"github.com/jappenzeller/colonybot/internal/application/production"
	"github.com/jappenzeller/colonybot/internal/domain/colony"
	"github.com/jappenzeller/colonybot/internal/domain/spawn"
	"github.com/jappenzeller/colonybot/test/helpers"
)

// stubActions accepts every command so scenarios can assert on what the
// scheduler decided rather than on world mechanics.
type stubActions struct {
	spawnCalls   []*spawn.Request
	renewalCalls int
}

func (a *stubActions) SpawnUnit(_ context.Context, _ string, req *spawn.Request) (spawn.ActionStatus, error) {
	a.spawnCalls = append(a.spawnCalls, req)
	return spawn.StatusOK, nil
}

func (a *stubActions) RenewNearestExpiring(_ context.Context, _ string) (spawn.ActionStatus, error) {
	a.renewalCalls++
	return spawn.StatusOK, nil
}

type productionContext struct {
	state   *colony.State
	actions *stubActions
	result  *production.TickResult
	err     error
}

func (pc *productionContext) reset() {
	pc.state = &colony.State{
		Name:            "W1N1",
		Tick:            100,
		Level:           1,
		MaxEnergyIncome: 20,
		Counts:          make(map[colony.Role]int),
		Targets:         make(map[colony.Role]int),
		ComputeBucket:   10000,
	}
	pc.actions = &stubActions{}
	pc.result = nil
	pc.err = nil
}

// Colony setup steps

func (pc *productionContext) aColonyAtLevelWithEnergy(level, available, capacity int) error {
	pc.state.Level = level
	pc.state.EnergyAvailable = available
	pc.state.EnergyCapacity = capacity
	return nil
}

func (pc *productionContext) theColonyHasUnitsWithTarget(count int, roleName string, target int) error {
	role, ok := colony.ParseRole(roleName)
	if !ok {
		return fmt.Errorf("unknown role %q", roleName)
	}
	pc.state.Counts[role] = count
	pc.state.Targets[role] = target
	return nil
}

func (pc *productionContext) theColonyIncomeIs(income, maxIncome int) error {
	pc.state.EnergyIncome = float64(income)
	pc.state.MaxEnergyIncome = float64(maxIncome)
	return nil
}

func (pc *productionContext) hostilesDealingDamage(dps int) error {
	pc.state.HomeThreat = float64(dps)
	pc.state.HostileDPS = float64(dps)
	return nil
}

func (pc *productionContext) aRemoteSite(name string, sources, distance int) error {
	pc.state.Remotes = append(pc.state.Remotes, colony.RemoteSite{
		Name:     name,
		Sources:  sources,
		Distance: distance,
	})
	return nil
}

func (pc *productionContext) capacityConstruction(remaining, future int) error {
	pc.state.Capacity.RemainingCost = remaining
	pc.state.Capacity.FutureCapacity = future
	return nil
}

func (pc *productionContext) builderWorkPartsOnConstruction(parts int) error {
	pc.state.Capacity.BuilderWorkParts = parts
	pc.state.Capacity.UnitsBuilding = 1
	return nil
}

func (pc *productionContext) unitsNearExpiry(count, cheapest int) error {
	pc.state.NearExpiryUnits = count
	pc.state.CheapestNearExpiryCost = cheapest
	return nil
}

// Action steps

func (pc *productionContext) theSchedulerRunsOneTick() error {
	cfg := helpers.DefaultConfig()
	store := persistence.NewMemoryStrategyStore()
	scheduler := production.NewScheduler(cfg.Scheduler, cfg.Governor, store, pc.actions, nil)
	pc.result, pc.err = scheduler.RunTick(context.Background(), pc.state)
	return pc.err
}

// Assertion steps

func (pc *productionContext) aSpawnIsIssued(roleName string) error {
	if pc.result == nil || pc.result.Spawned == nil {
		return fmt.Errorf("expected a %s spawn, got none (rejections: %v)", roleName, pc.rejections())
	}
	if pc.result.Spawned.Role.String() != roleName {
		return fmt.Errorf("expected a %s spawn, got %s", roleName, pc.result.Spawned.Role)
	}
	if len(pc.actions.spawnCalls) != 1 {
		return fmt.Errorf("expected exactly one spawn command, got %d", len(pc.actions.spawnCalls))
	}
	return nil
}

func (pc *productionContext) noSpawnIsIssued() error {
	if pc.result != nil && pc.result.Spawned != nil {
		return fmt.Errorf("expected no spawn, got %s", pc.result.Spawned.Role)
	}
	if len(pc.actions.spawnCalls) != 0 {
		return fmt.Errorf("expected no spawn commands, got %d", len(pc.actions.spawnCalls))
	}
	return nil
}

func (pc *productionContext) theSpawnBodyCostsAtMost(budget int) error {
	if pc.result == nil || pc.result.Spawned == nil {
		return fmt.Errorf("no spawn was issued")
	}
	if cost := pc.result.Spawned.Loadout.Cost(); cost > budget {
		return fmt.Errorf("body costs %d, expected at most %d", cost, budget)
	}
	return nil
}

func (pc *productionContext) theSpawnIsAssignedTo(site string) error {
	if pc.result == nil || pc.result.Spawned == nil {
		return fmt.Errorf("no spawn was issued")
	}
	if pc.result.Spawned.Assignment != site {
		return fmt.Errorf("expected assignment %q, got %q", site, pc.result.Spawned.Assignment)
	}
	return nil
}

func (pc *productionContext) theCandidateIsRejectedAs(roleName, reason string) error {
	role, ok := colony.ParseRole(roleName)
	if !ok {
		return fmt.Errorf("unknown role %q", roleName)
	}
	for _, r := range pc.result.Rejections {
		if r.Role == role && r.Reason == reason {
			return nil
		}
	}
	return fmt.Errorf("no %s rejection with reason %q (rejections: %v)", roleName, reason, pc.rejections())
}

func (pc *productionContext) aRenewalIsIssued() error {
	if pc.result == nil || !pc.result.RenewalIssued {
		return fmt.Errorf("expected a renewal command, got none")
	}
	if pc.actions.renewalCalls != 1 {
		return fmt.Errorf("expected exactly one renewal command, got %d", pc.actions.renewalCalls)
	}
	return nil
}

func (pc *productionContext) noRenewalIsIssued() error {
	if pc.result != nil && pc.result.RenewalIssued {
		return fmt.Errorf("expected no renewal command")
	}
	if pc.actions.renewalCalls != 0 {
		return fmt.Errorf("expected no renewal commands, got %d", pc.actions.renewalCalls)
	}
	return nil
}

func (pc *productionContext) rejections() []string {
	if pc.result == nil {
		return nil
	}
	out := make([]string, 0, len(pc.result.Rejections))
	for _, r := range pc.result.Rejections {
		out = append(out, fmt.Sprintf("%s:%s", r.Role, r.Reason))
	}
	return out
}

// InitializeProductionScenario registers the production pipeline steps
func InitializeProductionScenario(sc *godog.ScenarioContext) {
	ctx := &productionContext{}

	sc.Before(func(c context.Context, _ *godog.Scenario) (context.Context, error) {
		ctx.reset()
		return c, nil
	})

	// Setup steps
	sc.Step(`^a colony at level (\d+) with (\d+) of (\d+) energy$`, ctx.aColonyAtLevelWithEnergy)
	sc.Step(`^the colony has (\d+) "([^"]*)" units? with a target of (\d+)$`, ctx.theColonyHasUnitsWithTarget)
	sc.Step(`^the colony income is (\d+) of a possible (\d+)$`, ctx.theColonyIncomeIs)
	sc.Step(`^hostiles dealing (\d+) damage per tick$`, ctx.hostilesDealingDamage)
	sc.Step(`^a remote site "([^"]*)" with (\d+) sources at distance (\d+)$`, ctx.aRemoteSite)
	sc.Step(`^capacity construction needs (\d+) more energy toward (\d+) capacity$`, ctx.capacityConstruction)
	sc.Step(`^(\d+) builder work parts on the construction$`, ctx.builderWorkPartsOnConstruction)
	sc.Step(`^(\d+) units? near expiry, the cheapest costing (\d+)$`, ctx.unitsNearExpiry)

	// Action steps
	sc.Step(`^the production scheduler runs one tick$`, ctx.theSchedulerRunsOneTick)

	// Assertion steps
	sc.Step(`^a "([^"]*)" spawn is issued$`, ctx.aSpawnIsIssued)
	sc.Step(`^no spawn is issued$`, ctx.noSpawnIsIssued)
	sc.Step(`^the spawn body costs at most (\d+)$`, ctx.theSpawnBodyCostsAtMost)
	sc.Step(`^the spawn is assigned to "([^"]*)"$`, ctx.theSpawnIsAssignedTo)
	sc.Step(`^the "([^"]*)" candidate is rejected as "([^"]*)"$`, ctx.theCandidateIsRejectedAs)
	sc.Step(`^a renewal is issued$`, ctx.aRenewalIsIssued)
	sc.Step(`^no renewal is issued$`, ctx.noRenewalIsIssued)
}
