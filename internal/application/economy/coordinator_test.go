package economy_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jappenzeller/colonybot/internal/adapters/persistence"
	"github.com/jappenzeller/colonybot/internal/adapters/telemetry"
	appeconomy "github.com/jappenzeller/colonybot/internal/application/economy"
	"github.com/jappenzeller/colonybot/internal/domain/colony"
	"github.com/jappenzeller/colonybot/internal/domain/economy"
	"github.com/jappenzeller/colonybot/test/helpers"
)

func newCoordinator(store economy.StrategyStore, income economy.IncomeSource) *appeconomy.Coordinator {
	cfg := helpers.DefaultConfig()
	return appeconomy.NewCoordinator(cfg.Economy, cfg.Scheduler, cfg.Governor, store, income)
}

func TestCoordinator_Due(t *testing.T) {
	// Arrange - refresh interval defaults to 100
	coordinator := newCoordinator(persistence.NewMemoryStrategyStore(), nil)

	// Act & Assert
	assert.True(t, coordinator.Due(0))
	assert.True(t, coordinator.Due(100))
	assert.True(t, coordinator.Due(1700))
	assert.False(t, coordinator.Due(50))
	assert.False(t, coordinator.Due(101))
}

func TestCoordinator_PhaseDetection(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*colony.State)
		want  economy.Phase
	}{
		{"heavy hostiles trump level", func(s *colony.State) {
			s.Level = 6
			s.HostileDPS = 500
		}, economy.PhaseEmergency},
		{"damaged spawner", func(s *colony.State) {
			s.Level = 6
			s.SpawnerDamaged = true
		}, economy.PhaseEmergency},
		{"no harvesters", func(s *colony.State) {
			s.Level = 6
			s.Counts[colony.RoleHarvester] = 0
		}, economy.PhaseEmergency},
		{"low level bootstraps", func(s *colony.State) { s.Level = 2 }, economy.PhaseBootstrap},
		{"mid level develops", func(s *colony.State) { s.Level = 4 }, economy.PhaseDeveloping},
		{"high level is stable", func(s *colony.State) { s.Level = 6 }, economy.PhaseStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			coordinator := newCoordinator(persistence.NewMemoryStrategyStore(), nil)
			state := helpers.HealthyColony("W1N1")
			tt.setup(state)

			// Act
			strategic, err := coordinator.Refresh(context.Background(), state)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.want, strategic.Phase)
		})
	}
}

func TestCoordinator_AllocationsAlwaysSumTo100(t *testing.T) {
	// Arrange - one state per phase
	states := map[string]func(*colony.State){
		"emergency":  func(s *colony.State) { s.HostileDPS = 500 },
		"bootstrap":  func(s *colony.State) { s.Level = 1 },
		"developing": func(s *colony.State) { s.Level = 4 },
		"stable":     func(s *colony.State) { s.Level = 7 },
	}

	for name, setup := range states {
		t.Run(name, func(t *testing.T) {
			coordinator := newCoordinator(persistence.NewMemoryStrategyStore(), nil)
			state := helpers.HealthyColony("W1N1")
			setup(state)

			// Act
			strategic, err := coordinator.Refresh(context.Background(), state)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, 100, strategic.Budget.Allocations.Total())
			assert.True(t, strategic.Sane())
		})
	}
}

func TestCoordinator_FallsBackToHalfMaxIncomeWithoutTelemetry(t *testing.T) {
	// Arrange - no income source wired at all
	coordinator := newCoordinator(persistence.NewMemoryStrategyStore(), nil)
	state := helpers.HealthyColony("W1N1")
	state.MaxEnergyIncome = 20

	// Act
	strategic, err := coordinator.Refresh(context.Background(), state)

	// Assert
	require.NoError(t, err)
	assert.InDelta(t, 10, strategic.Budget.IncomePerTick, 1e-9)
	assert.InDelta(t, 0.5, strategic.Budget.HarvestEfficiency, 1e-9)
}

func TestCoordinator_UsesMeasuredIncome(t *testing.T) {
	// Arrange
	tracker := telemetry.NewIncomeTracker(10)
	tracker.Record("W1N1", 16)
	tracker.Record("W1N1", 18)
	coordinator := newCoordinator(persistence.NewMemoryStrategyStore(), tracker)
	state := helpers.HealthyColony("W1N1")

	// Act
	strategic, err := coordinator.Refresh(context.Background(), state)

	// Assert
	require.NoError(t, err)
	assert.InDelta(t, 17, strategic.Budget.IncomePerTick, 1e-9)
	assert.InDelta(t, 0.85, strategic.Budget.HarvestEfficiency, 1e-9)
}

func TestCoordinator_WorkforceFloors(t *testing.T) {
	// Arrange - healthy colony, no construction, no threat
	coordinator := newCoordinator(persistence.NewMemoryStrategyStore(), nil)
	state := helpers.HealthyColony("W1N1")

	// Act
	strategic, err := coordinator.Refresh(context.Background(), state)

	// Assert
	require.NoError(t, err)
	targets := strategic.Workforce.Targets
	assert.GreaterOrEqual(t, targets[colony.RoleHarvester], 1)
	assert.GreaterOrEqual(t, targets[colony.RoleHauler], 1)
	assert.GreaterOrEqual(t, targets[colony.RoleUpgrader], 1)
	assert.Zero(t, targets[colony.RoleBuilder], "no construction backlog")
	assert.Zero(t, targets[colony.RoleDefender], "no threat")
}

func TestCoordinator_EmergencyDropsUpgraderFloor(t *testing.T) {
	// Arrange
	coordinator := newCoordinator(persistence.NewMemoryStrategyStore(), nil)
	state := helpers.HealthyColony("W1N1")
	state.HostileDPS = 500

	// Act
	strategic, err := coordinator.Refresh(context.Background(), state)

	// Assert - the emergency row allocates nothing to upgrading
	require.NoError(t, err)
	assert.Zero(t, strategic.Workforce.Targets[colony.RoleUpgrader])
}

func TestCoordinator_ThreatScalesDefenderTarget(t *testing.T) {
	// Arrange
	coordinator := newCoordinator(persistence.NewMemoryStrategyStore(), nil)
	state := helpers.HealthyColony("W1N1")
	state.HomeThreat = 450

	// Act
	strategic, err := coordinator.Refresh(context.Background(), state)

	// Assert - 1 + threat/200, capped at 3
	require.NoError(t, err)
	assert.Equal(t, 3, strategic.Workforce.Targets[colony.RoleDefender])
}

func TestCoordinator_BottleneckDiagnosisFirstMatch(t *testing.T) {
	// Arrange - low efficiency AND energy on the ground: income wins,
	// being the most upstream constraint
	tracker := telemetry.NewIncomeTracker(10)
	tracker.Record("W1N1", 2)
	coordinator := newCoordinator(persistence.NewMemoryStrategyStore(), tracker)
	state := helpers.HealthyColony("W1N1")
	state.EnergyOnGround = 2000
	state.StorageFreeCapacity = 500

	// Act
	strategic, err := coordinator.Refresh(context.Background(), state)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, economy.BottleneckIncome, strategic.Bottleneck)
	assert.NotEmpty(t, strategic.Recommendations)
}

func TestCoordinator_TransportBottleneck(t *testing.T) {
	// Arrange - healthy income, energy piling up, storage has room
	tracker := telemetry.NewIncomeTracker(10)
	tracker.Record("W1N1", 18)
	coordinator := newCoordinator(persistence.NewMemoryStrategyStore(), tracker)
	state := helpers.HealthyColony("W1N1")
	state.EnergyOnGround = 2000
	state.StorageFreeCapacity = 500

	// Act
	strategic, err := coordinator.Refresh(context.Background(), state)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, economy.BottleneckTransport, strategic.Bottleneck)
}

func TestCoordinator_ConsumptionBottleneckWhenStorageFull(t *testing.T) {
	// Arrange
	tracker := telemetry.NewIncomeTracker(10)
	tracker.Record("W1N1", 18)
	coordinator := newCoordinator(persistence.NewMemoryStrategyStore(), tracker)
	state := helpers.HealthyColony("W1N1")
	state.EnergyOnGround = 2000
	state.StorageFreeCapacity = 0

	// Act
	strategic, err := coordinator.Refresh(context.Background(), state)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, economy.BottleneckConsumption, strategic.Bottleneck)
}

func TestCoordinator_RefreshPersistsToStore(t *testing.T) {
	// Arrange
	store := persistence.NewMemoryStrategyStore()
	coordinator := newCoordinator(store, nil)
	state := helpers.HealthyColony("W1N1")
	state.Tick = 1700

	// Act
	_, err := coordinator.Refresh(context.Background(), state)
	require.NoError(t, err)

	// Assert
	stored, err := store.Load(context.Background(), "W1N1")
	require.NoError(t, err)
	assert.Equal(t, int64(1700), stored.UpdatedTick)
	assert.True(t, stored.Sane())
}

func TestCoordinator_RemoteStaffingOnceUnlocked(t *testing.T) {
	// Arrange - expansion level with one quiet two-source remote
	coordinator := newCoordinator(persistence.NewMemoryStrategyStore(), nil)
	state := helpers.HealthyColony("W1N1")
	state.Level = 3
	state.Remotes = []colony.RemoteSite{
		{Name: "E1", Sources: 2, Distance: 60, IntelAge: 100, Reserved: false},
	}

	// Act
	strategic, err := coordinator.Refresh(context.Background(), state)

	// Assert
	require.NoError(t, err)
	targets := strategic.Workforce.Targets
	assert.Equal(t, 2, targets[colony.RoleRemoteHarvester])
	assert.Equal(t, 4, targets[colony.RoleRemoteHauler], "two sources times two legs")
	assert.Equal(t, 1, targets[colony.RoleReserver])
}

func TestCoordinator_NilSnapshotErrors(t *testing.T) {
	// Arrange
	coordinator := newCoordinator(persistence.NewMemoryStrategyStore(), nil)

	// Act
	_, err := coordinator.Refresh(context.Background(), nil)

	// Assert
	assert.Error(t, err)
}
