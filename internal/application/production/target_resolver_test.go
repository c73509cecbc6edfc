package production_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jappenzeller/colonybot/internal/application/production"
	"github.com/jappenzeller/colonybot/internal/domain/colony"
)

func TestTargetResolver_FirstMatchWins(t *testing.T) {
	// Arrange - both sites short of harvesters; the earlier one is taken
	resolver := production.NewTargetResolver()
	state := &colony.State{
		Remotes: []colony.RemoteSite{
			{Name: "E1", Sources: 2, AssignedHarvesters: 1},
			{Name: "E2", Sources: 2, AssignedHarvesters: 0},
		},
	}

	// Act
	target, ok := resolver.Resolve(colony.RoleRemoteHarvester, state)

	// Assert
	assert.True(t, ok)
	assert.Equal(t, "E1", target)
}

func TestTargetResolver_SkipsSaturatedSites(t *testing.T) {
	// Arrange
	resolver := production.NewTargetResolver()
	state := &colony.State{
		Remotes: []colony.RemoteSite{
			{Name: "E1", Sources: 2, AssignedHarvesters: 2},
			{Name: "E2", Sources: 1, AssignedHarvesters: 0},
		},
	}

	// Act
	target, ok := resolver.Resolve(colony.RoleRemoteHarvester, state)

	// Assert
	assert.True(t, ok)
	assert.Equal(t, "E2", target)
}

func TestTargetResolver_NoSiteQualifies(t *testing.T) {
	// Arrange
	resolver := production.NewTargetResolver()
	state := &colony.State{
		Remotes: []colony.RemoteSite{
			{Name: "E1", Sources: 2, AssignedHarvesters: 2},
		},
	}

	// Act
	target, ok := resolver.Resolve(colony.RoleRemoteHarvester, state)

	// Assert
	assert.False(t, ok)
	assert.Empty(t, target)
}

func TestTargetResolver_HomeRolesNeverResolve(t *testing.T) {
	// Arrange
	resolver := production.NewTargetResolver()
	state := &colony.State{
		Remotes: []colony.RemoteSite{{Name: "E1", Sources: 2}},
	}

	// Act
	_, ok := resolver.Resolve(colony.RoleHarvester, state)

	// Assert
	assert.False(t, ok)
}

func TestTargetResolver_PerRoleNeeds(t *testing.T) {
	// Arrange - one site per distinct need
	resolver := production.NewTargetResolver()
	state := &colony.State{
		Remotes: []colony.RemoteSite{
			{Name: "reserve-me", Sources: 1, AssignedHarvesters: 1, AssignedHaulers: 2, IntelAge: 100},
			{Name: "scout-me", Sources: 1, AssignedHarvesters: 1, AssignedHaulers: 2, Reserved: true, IntelAge: -1},
			{Name: "defend-me", Sources: 1, AssignedHarvesters: 1, AssignedHaulers: 2, Reserved: true, IntelAge: 100, Threat: 90},
		},
	}

	// Act & Assert
	reserveTarget, _ := resolver.Resolve(colony.RoleReserver, state)
	assert.Equal(t, "reserve-me", reserveTarget)

	scoutTarget, _ := resolver.Resolve(colony.RoleScout, state)
	assert.Equal(t, "scout-me", scoutTarget)

	defendTarget, _ := resolver.Resolve(colony.RoleRemoteDefender, state)
	assert.Equal(t, "defend-me", defendTarget)
}
