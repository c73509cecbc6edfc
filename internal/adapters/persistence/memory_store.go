package persistence

import (
	"context"
	"sync"

	"github.com/jappenzeller/colonybot/internal/domain/economy"
)

// MemoryStrategyStore implements economy.StrategyStore with an in-process
// map. It backs tests and the simulation harness, where database round-trips
// would only add noise.
type MemoryStrategyStore struct {
	mu     sync.RWMutex
	states map[string]*economy.StrategicState
}

// NewMemoryStrategyStore creates an empty in-memory strategy store
func NewMemoryStrategyStore() *MemoryStrategyStore {
	return &MemoryStrategyStore{
		states: make(map[string]*economy.StrategicState),
	}
}

// Load retrieves a colony's strategic state, economy.ErrStateNotFound when absent
func (s *MemoryStrategyStore) Load(ctx context.Context, colonyName string) (*economy.StrategicState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[colonyName]
	if !ok {
		return nil, economy.ErrStateNotFound
	}
	copied := *state
	return &copied, nil
}

// Save stores a copy of the state keyed by colony name
func (s *MemoryStrategyStore) Save(ctx context.Context, state *economy.StrategicState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *state
	s.states[state.Colony] = &copied
	return nil
}
