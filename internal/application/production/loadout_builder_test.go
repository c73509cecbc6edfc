package production_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jappenzeller/colonybot/internal/application/production"
	"github.com/jappenzeller/colonybot/internal/domain/colony"
	"github.com/jappenzeller/colonybot/internal/domain/unit"
)

func TestLoadoutBuilder_Deterministic(t *testing.T) {
	// Arrange
	builder := production.NewLoadoutBuilder()

	// Act & Assert - identical inputs, identical compositions
	for _, role := range colony.AllRoles() {
		a := builder.Build(role, 800, false)
		b := builder.Build(role, 800, false)
		assert.Equal(t, a, b, "role %s", role)
	}
}

func TestLoadoutBuilder_NeverExceedsBudget(t *testing.T) {
	// Arrange
	builder := production.NewLoadoutBuilder()

	// Act & Assert
	for _, role := range colony.AllRoles() {
		for budget := 0; budget <= 2000; budget += 50 {
			body := builder.Build(role, budget, false)
			assert.LessOrEqual(t, body.Cost(), budget,
				"role %s at budget %d", role, budget)
			assert.LessOrEqual(t, len(body), 50, "role %s at budget %d", role, budget)
		}
	}
}

func TestLoadoutBuilder_BelowMinimumBudgetIsEmpty(t *testing.T) {
	// Arrange
	builder := production.NewLoadoutBuilder()

	// Act & Assert
	for _, role := range colony.AllRoles() {
		min := production.MinimumBudget(role)
		require.Positive(t, min, "role %s has no minimum", role)

		assert.True(t, builder.Build(role, min-1, false).Empty(), "role %s under minimum", role)
		assert.False(t, builder.Build(role, min, false).Empty(), "role %s at minimum", role)
	}
}

func TestLoadoutBuilder_EmergencyCapsAtMinimumTier(t *testing.T) {
	// Arrange - plenty of budget, dead economy
	builder := production.NewLoadoutBuilder()

	// Act
	body := builder.Build(colony.RoleHarvester, 1200, true)

	// Assert - the cheapest viable harvester, not a scaled one
	assert.Equal(t, unit.Loadout{unit.PartWork, unit.PartCarry, unit.PartMove}, body)
}

func TestLoadoutBuilder_HarvesterScalesWithBudget(t *testing.T) {
	// Arrange
	builder := production.NewLoadoutBuilder()

	// Act
	small := builder.Build(colony.RoleHarvester, 300, false)
	medium := builder.Build(colony.RoleHarvester, 550, false)
	large := builder.Build(colony.RoleHarvester, 2000, false)

	// Assert
	assert.Equal(t, 1, small.WorkParts())
	assert.Equal(t, 3, medium.WorkParts())
	assert.Equal(t, 5, large.WorkParts(), "work parts cap at 5")
}

func TestLoadoutBuilder_HaulerAlternatesCarryMove(t *testing.T) {
	// Arrange
	builder := production.NewLoadoutBuilder()

	// Act
	body := builder.Build(colony.RoleHauler, 500, false)

	// Assert
	require.Len(t, body, 10)
	for i := 0; i < len(body); i += 2 {
		assert.Equal(t, unit.PartCarry, body[i])
		assert.Equal(t, unit.PartMove, body[i+1])
	}
}

func TestLoadoutBuilder_RemoteHarvesterTakesFullMoves(t *testing.T) {
	// Arrange
	builder := production.NewLoadoutBuilder()

	// Act
	home := builder.Build(colony.RoleHarvester, 1000, false)
	remote := builder.Build(colony.RoleRemoteHarvester, 1000, false)

	// Assert - same work stacking, heavier move complement for the commute
	assert.Greater(t, remote.Count(unit.PartMove), home.Count(unit.PartMove))
}

func TestLoadoutBuilder_DefenderTiers(t *testing.T) {
	// Arrange
	builder := production.NewLoadoutBuilder()

	tests := []struct {
		budget  int
		attacks int
		cost    int
	}{
		{200, 1, 180},
		{500, 3, 410},
		{1000, 6, 770},
	}

	for _, tt := range tests {
		// Act
		body := builder.Build(colony.RoleDefender, tt.budget, false)

		// Assert
		assert.Equal(t, tt.attacks, body.Count(unit.PartAttack), "budget %d", tt.budget)
		assert.Equal(t, tt.cost, body.Cost(), "budget %d", tt.budget)
	}
}

func TestLoadoutBuilder_ReserverTiers(t *testing.T) {
	// Arrange
	builder := production.NewLoadoutBuilder()

	// Act & Assert
	assert.Equal(t, 1, builder.Build(colony.RoleReserver, 700, false).Count(unit.PartClaim))
	assert.Equal(t, 2, builder.Build(colony.RoleReserver, 1400, false).Count(unit.PartClaim))
}

func TestLoadoutBuilder_ScoutIsSingleMove(t *testing.T) {
	// Arrange
	builder := production.NewLoadoutBuilder()

	// Act & Assert
	assert.Equal(t, unit.Loadout{unit.PartMove}, builder.Build(colony.RoleScout, 5000, false))
}

func TestLoadoutBuilder_RemoteDefenderCarriesHealAtHighBudget(t *testing.T) {
	// Arrange
	builder := production.NewLoadoutBuilder()

	// Act
	cheap := builder.Build(colony.RoleRemoteDefender, 500, false)
	strong := builder.Build(colony.RoleRemoteDefender, 1200, false)

	// Assert
	assert.Zero(t, cheap.Count(unit.PartHeal))
	assert.Equal(t, 1, strong.Count(unit.PartHeal))
}
