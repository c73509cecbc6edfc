package colony_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jappenzeller/colonybot/internal/domain/colony"
)

func TestRemoteSite_TransportCeiling(t *testing.T) {
	tests := []struct {
		name string
		site colony.RemoteSite
		want int
	}{
		{"short haul", colony.RemoteSite{Sources: 2, Distance: 30}, 2},
		{"one extra leg", colony.RemoteSite{Sources: 2, Distance: 60}, 4},
		{"long haul", colony.RemoteSite{Sources: 1, Distance: 150}, 4},
		{"no sources", colony.RemoteSite{Sources: 0, Distance: 100}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.site.TransportCeiling())
		})
	}
}

func TestRemoteSite_NeedsHauler_RequiresHarvesters(t *testing.T) {
	// Arrange - below ceiling but nothing harvesting yet
	site := colony.RemoteSite{Sources: 2, AssignedHarvesters: 0, AssignedHaulers: 0}

	// Act & Assert
	assert.False(t, site.NeedsHauler())

	site.AssignedHarvesters = 1
	assert.True(t, site.NeedsHauler())
}

func TestRemoteSite_NeedsReservation_SkipsThreatened(t *testing.T) {
	assert.True(t, colony.RemoteSite{Reserved: false}.NeedsReservation())
	assert.False(t, colony.RemoteSite{Reserved: true}.NeedsReservation())
	assert.False(t, colony.RemoteSite{Reserved: false, Threat: 100}.NeedsReservation())
}

func TestRemoteSite_NeedsScout(t *testing.T) {
	assert.True(t, colony.RemoteSite{IntelAge: -1}.NeedsScout(), "never scouted")
	assert.True(t, colony.RemoteSite{IntelAge: 2000}.NeedsScout(), "stale intel")
	assert.False(t, colony.RemoteSite{IntelAge: 100}.NeedsScout())
}

func TestRemoteSite_NeedsDefender(t *testing.T) {
	assert.True(t, colony.RemoteSite{Threat: 80}.NeedsDefender())
	assert.False(t, colony.RemoteSite{Threat: 80, HasDefender: true}.NeedsDefender())
	assert.False(t, colony.RemoteSite{}.NeedsDefender())
}
