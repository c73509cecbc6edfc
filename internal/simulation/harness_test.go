package simulation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jappenzeller/colonybot/internal/domain/colony"
	"github.com/jappenzeller/colonybot/internal/simulation"
	"github.com/jappenzeller/colonybot/test/helpers"
)

func TestHarness_ColdStartSurvivesLongRun(t *testing.T) {
	// Arrange - fresh colony, no units, default configuration
	world := simulation.NewWorld("SIM", 2)
	harness := simulation.NewHarness(helpers.DefaultConfig(), world)

	// Act - run well past several unit lifetimes
	report, err := harness.Run(context.Background(), 4000)

	// Assert - the colony bootstraps and never collapses
	require.NoError(t, err)
	assert.Equal(t, 4000, report.Ticks)
	assert.Greater(t, report.Spawns, 4, "expected ongoing production across lifetimes")
	assert.LessOrEqual(t, report.MaxDeadStreak, 100,
		"colony went without harvesters and haulers for too long")
	assert.GreaterOrEqual(t, report.FinalState.Count(colony.RoleHarvester), 1)
	assert.GreaterOrEqual(t, report.FinalState.Count(colony.RoleHauler), 1)
	assert.Greater(t, report.FinalState.TotalUnits(), 1)
}

func TestHarness_RecoversFromThreat(t *testing.T) {
	// Arrange - a hostile presence from tick zero
	world := simulation.NewWorld("SIM", 2)
	world.SetHomeThreat(250)
	harness := simulation.NewHarness(helpers.DefaultConfig(), world)

	// Act
	report, err := harness.Run(context.Background(), 2000)

	// Assert - harvesters still come first, then a defender appears
	require.NoError(t, err)
	assert.GreaterOrEqual(t, report.FinalState.Count(colony.RoleHarvester), 1)
	assert.GreaterOrEqual(t, report.FinalState.Count(colony.RoleDefender), 1)
}

func TestHarness_ShortRunSpawnsFirstHarvester(t *testing.T) {
	// Arrange
	world := simulation.NewWorld("SIM", 1)
	harness := simulation.NewHarness(helpers.DefaultConfig(), world)

	// Act - a single strategic refresh plus a handful of ticks
	report, err := harness.Run(context.Background(), 10)

	// Assert
	require.NoError(t, err)
	assert.GreaterOrEqual(t, report.Spawns, 1)
	assert.Equal(t, 1, report.FinalState.Count(colony.RoleHarvester))
}
