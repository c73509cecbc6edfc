package economy

import (
	"context"
	"errors"
)

// ErrStateNotFound is returned by StrategyStore.Load when no state has been
// persisted for the colony yet. Callers fall back to DefaultStrategicState.
var ErrStateNotFound = errors.New("strategic state not found")

// StrategyStore is the external shared key-value store holding each colony's
// strategic memory, namespaced by colony name.
type StrategyStore interface {
	Load(ctx context.Context, colonyName string) (*StrategicState, error)
	Save(ctx context.Context, state *StrategicState) error
}

// IncomeSource serves the rolling telemetry average of harvested energy per
// tick. The boolean is false when no samples exist for the colony, in which
// case the coordinator falls back to half the theoretical maximum.
type IncomeSource interface {
	MeanIncome(colonyName string) (float64, bool)
}
