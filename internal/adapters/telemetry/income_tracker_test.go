package telemetry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jappenzeller/colonybot/internal/adapters/telemetry"
)

func TestIncomeTracker_MeanOfRecordedSamples(t *testing.T) {
	// Arrange
	tracker := telemetry.NewIncomeTracker(10)
	tracker.Record("W1N1", 10)
	tracker.Record("W1N1", 20)
	tracker.Record("W1N1", 30)

	// Act
	mean, ok := tracker.MeanIncome("W1N1")

	// Assert
	assert.True(t, ok)
	assert.InDelta(t, 20.0, mean, 1e-9)
}

func TestIncomeTracker_WindowEvictsOldest(t *testing.T) {
	// Arrange - window of 3, four samples recorded
	tracker := telemetry.NewIncomeTracker(3)
	tracker.Record("W1N1", 100)
	tracker.Record("W1N1", 10)
	tracker.Record("W1N1", 20)
	tracker.Record("W1N1", 30)

	// Act
	mean, ok := tracker.MeanIncome("W1N1")

	// Assert - the initial 100 has fallen out of the window
	assert.True(t, ok)
	assert.InDelta(t, 20.0, mean, 1e-9)
}

func TestIncomeTracker_UnknownColony(t *testing.T) {
	// Arrange
	tracker := telemetry.NewIncomeTracker(5)
	tracker.Record("W1N1", 10)

	// Act
	mean, ok := tracker.MeanIncome("W9N9")

	// Assert
	assert.False(t, ok)
	assert.Zero(t, mean)
}

func TestIncomeTracker_WindowClampsToOne(t *testing.T) {
	// Arrange - a nonsense window degrades to keeping the latest sample
	tracker := telemetry.NewIncomeTracker(0)
	tracker.Record("W1N1", 5)
	tracker.Record("W1N1", 15)

	// Act
	mean, ok := tracker.MeanIncome("W1N1")

	// Assert
	assert.True(t, ok)
	assert.InDelta(t, 15.0, mean, 1e-9)
}

func TestIncomeTracker_ColoniesAreIndependent(t *testing.T) {
	// Arrange
	tracker := telemetry.NewIncomeTracker(5)
	tracker.Record("W1N1", 10)
	tracker.Record("W2N2", 40)

	// Act
	a, okA := tracker.MeanIncome("W1N1")
	b, okB := tracker.MeanIncome("W2N2")

	// Assert
	assert.True(t, okA)
	assert.True(t, okB)
	assert.InDelta(t, 10.0, a, 1e-9)
	assert.InDelta(t, 40.0, b, 1e-9)
}
