package production_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jappenzeller/colonybot/internal/application/production"
	"github.com/jappenzeller/colonybot/internal/domain/colony"
	"github.com/jappenzeller/colonybot/test/helpers"
)

func newGovernor() *production.TransitionGovernor {
	cfg := helpers.DefaultConfig()
	return production.NewTransitionGovernor(cfg.Governor, cfg.Scheduler)
}

// transitionState returns a healthy colony mid-expansion: capacity growing
// 1000 -> 1300 with five builder work parts on the job.
func transitionState(remainingCost int) *colony.State {
	state := helpers.HealthyColony("W1N1")
	state.EnergyCapacity = 1000
	state.Capacity = colony.CapacityWork{
		RemainingCost:    remainingCost,
		FutureCapacity:   1300,
		BuilderWorkParts: 5,
		UnitsBuilding:    1,
	}
	return state
}

func TestGovernor_NoConstructionMeansNoTransition(t *testing.T) {
	// Arrange
	governor := newGovernor()
	state := helpers.HealthyColony("W1N1")

	// Act
	transition := governor.Assess(state)

	// Assert
	assert.False(t, transition.InTransition)
	assert.False(t, transition.SuppressRenewal)
	assert.False(t, transition.DelaySpawning)
	assert.Equal(t, state.EnergyCapacity, transition.FutureCapacity)
}

func TestGovernor_SuppressesRenewalNearLargeCompletion(t *testing.T) {
	// Arrange - 30% capacity growth, throughput 10/tick, 4000 to go: eta 400
	governor := newGovernor()
	state := transitionState(4000)

	// Act
	transition := governor.Assess(state)

	// Assert
	assert.True(t, transition.InTransition)
	assert.InDelta(t, 400, transition.EtaTicks, 1e-9)
	assert.True(t, transition.SuppressRenewal)
	assert.False(t, transition.DelaySpawning, "eta 400 is outside the delay horizon")
}

func TestGovernor_DistantCompletionDoesNotSuppress(t *testing.T) {
	// Arrange - eta 600, past the suppression horizon
	governor := newGovernor()
	state := transitionState(6000)

	// Act
	transition := governor.Assess(state)

	// Assert
	assert.True(t, transition.InTransition)
	assert.False(t, transition.SuppressRenewal)
}

func TestGovernor_SmallGrowthDoesNotSuppress(t *testing.T) {
	// Arrange - imminent completion but only 10% capacity growth
	governor := newGovernor()
	state := transitionState(2000)
	state.Capacity.FutureCapacity = 1100

	// Act
	transition := governor.Assess(state)

	// Assert
	assert.False(t, transition.SuppressRenewal)
	assert.True(t, transition.DelaySpawning, "eta 200 still delays spawning")
}

func TestGovernor_NoBuildersMeansInfiniteEta(t *testing.T) {
	// Arrange
	governor := newGovernor()
	state := transitionState(4000)
	state.Capacity.BuilderWorkParts = 0

	// Act
	transition := governor.Assess(state)

	// Assert - transition exists but restrains nothing
	assert.True(t, transition.InTransition)
	assert.True(t, math.IsInf(transition.EtaTicks, 1))
	assert.False(t, transition.SuppressRenewal)
	assert.False(t, transition.DelaySpawning)
}

func TestGovernor_DelayNeverAppliesToCriticalRoles(t *testing.T) {
	// Arrange - eta 200, inside the delay horizon
	governor := newGovernor()
	state := transitionState(2000)
	transition := governor.Assess(state)
	assert.True(t, transition.DelaySpawning)

	// Act & Assert
	assert.False(t, governor.DelaysSpawn(transition, colony.RoleHarvester, state))
	assert.False(t, governor.DelaysSpawn(transition, colony.RoleHauler, state))
	assert.False(t, governor.DelaysSpawn(transition, colony.RoleUpgrader, state))
	assert.True(t, governor.DelaysSpawn(transition, colony.RoleBuilder, state))
	assert.True(t, governor.DelaysSpawn(transition, colony.RoleDefender, state))
}

func TestGovernor_DelayYieldsToRolesBelowMinimum(t *testing.T) {
	// Arrange - upgraders have a configured floor of one
	governor := newGovernor()
	state := transitionState(2000)
	state.Counts[colony.RoleUpgrader] = 0
	transition := governor.Assess(state)

	// Act & Assert
	assert.False(t, governor.DelaysSpawn(transition, colony.RoleUpgrader, state))
}

func TestGovernor_CheapBodiesAlwaysLapse(t *testing.T) {
	// Arrange - no transition at all; a 100-energy body against 550 capacity
	governor := newGovernor()
	state := helpers.HealthyColony("W1N1")
	state.NearExpiryUnits = 1
	state.CheapestNearExpiryCost = 100
	transition := governor.Assess(state)

	// Act & Assert
	assert.True(t, governor.SuppressesRenewal(transition, state))
}

func TestGovernor_ExpensiveBodiesRenewOutsideTransitions(t *testing.T) {
	// Arrange - 400 energy against 550 capacity is worth keeping
	governor := newGovernor()
	state := helpers.HealthyColony("W1N1")
	state.NearExpiryUnits = 1
	state.CheapestNearExpiryCost = 400
	transition := governor.Assess(state)

	// Act & Assert
	assert.False(t, governor.SuppressesRenewal(transition, state))
}

func TestGovernor_SuppressionYieldsWhenRoleBelowMinimum(t *testing.T) {
	// Arrange - suppressing transition, but the last harvester is expiring
	governor := newGovernor()
	state := transitionState(4000)
	state.NearExpiryUnits = 1
	state.CheapestNearExpiryCost = 600 // above the cheap-body fraction of 1000
	state.Counts[colony.RoleHarvester] = 0
	transition := governor.Assess(state)
	assert.True(t, transition.SuppressRenewal)

	// Act & Assert
	assert.False(t, governor.SuppressesRenewal(transition, state))

	// With minimums met, suppression holds.
	state.Counts[colony.RoleHarvester] = 2
	assert.True(t, governor.SuppressesRenewal(transition, state))
}

func TestGovernor_NoNearExpiryUnitsNeverSuppresses(t *testing.T) {
	// Arrange
	governor := newGovernor()
	state := transitionState(4000)
	transition := governor.Assess(state)

	// Act & Assert - nothing to renew, nothing to suppress
	assert.False(t, governor.SuppressesRenewal(transition, state))
}
