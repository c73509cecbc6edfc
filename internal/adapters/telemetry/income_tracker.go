package telemetry

import (
	"sync"

	"gonum.org/v1/gonum/stat"
)

// IncomeTracker keeps a bounded window of per-tick harvested energy samples
// per colony and serves the rolling mean. It implements economy.IncomeSource.
type IncomeTracker struct {
	mu      sync.RWMutex
	window  int
	samples map[string][]float64
}

// NewIncomeTracker creates a tracker keeping the given number of samples per
// colony. Windows below 1 are clamped to 1.
func NewIncomeTracker(window int) *IncomeTracker {
	if window < 1 {
		window = 1
	}
	return &IncomeTracker{
		window:  window,
		samples: make(map[string][]float64),
	}
}

// Record appends one tick's harvested energy for the colony, evicting the
// oldest sample once the window is full.
func (t *IncomeTracker) Record(colonyName string, income float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := append(t.samples[colonyName], income)
	if len(s) > t.window {
		s = s[len(s)-t.window:]
	}
	t.samples[colonyName] = s
}

// MeanIncome returns the rolling average income for the colony. The boolean
// is false when no samples have been recorded yet.
func (t *IncomeTracker) MeanIncome(colonyName string) (float64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s := t.samples[colonyName]
	if len(s) == 0 {
		return 0, false
	}
	return stat.Mean(s, nil), true
}
