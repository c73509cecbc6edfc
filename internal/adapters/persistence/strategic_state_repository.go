package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/jappenzeller/colonybot/internal/domain/colony"
	"github.com/jappenzeller/colonybot/internal/domain/economy"
)

// GormStrategyStore implements economy.StrategyStore using GORM
type GormStrategyStore struct {
	db *gorm.DB
}

// NewGormStrategyStore creates a new GORM strategy store
func NewGormStrategyStore(db *gorm.DB) *GormStrategyStore {
	return &GormStrategyStore{db: db}
}

// Load retrieves a colony's strategic state. Returns
// economy.ErrStateNotFound when no row exists so callers can fall back to
// safe defaults.
func (r *GormStrategyStore) Load(ctx context.Context, colonyName string) (*economy.StrategicState, error) {
	var model StrategicStateModel
	result := r.db.WithContext(ctx).Where("colony = ?", colonyName).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, economy.ErrStateNotFound
		}
		return nil, fmt.Errorf("failed to load strategic state: %w", result.Error)
	}

	return r.modelToState(&model)
}

// Save upserts a colony's strategic state
func (r *GormStrategyStore) Save(ctx context.Context, state *economy.StrategicState) error {
	model, err := r.stateToModel(state)
	if err != nil {
		return fmt.Errorf("failed to convert strategic state to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save strategic state: %w", result.Error)
	}

	return nil
}

// workforceWire is the JSON shape of workforce requirements, keyed by role
// name so rows stay readable and survive enum reordering.
type workforceWire struct {
	Targets map[string]int `json:"targets"`
	Gaps    map[string]int `json:"gaps"`
}

func (r *GormStrategyStore) stateToModel(state *economy.StrategicState) (*StrategicStateModel, error) {
	budget, err := json.Marshal(state.Budget)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal budget: %w", err)
	}

	wire := workforceWire{
		Targets: roleKeysToNames(state.Workforce.Targets),
		Gaps:    roleKeysToNames(state.Workforce.Gaps),
	}
	workforce, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal workforce: %w", err)
	}

	transition, err := json.Marshal(state.Transition)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transition: %w", err)
	}

	advice, err := json.Marshal(state.Recommendations)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	return &StrategicStateModel{
		Colony:      state.Colony,
		UpdatedTick: state.UpdatedTick,
		Phase:       string(state.Phase),
		Bottleneck:  string(state.Bottleneck),
		Progress:    state.ProgressToNextLevel,
		Budget:      string(budget),
		Workforce:   string(workforce),
		Transition:  string(transition),
		Advice:      string(advice),
		UpdatedAt:   time.Now().UTC(),
	}, nil
}

func (r *GormStrategyStore) modelToState(model *StrategicStateModel) (*economy.StrategicState, error) {
	state := &economy.StrategicState{
		Colony:              model.Colony,
		UpdatedTick:         model.UpdatedTick,
		Phase:               economy.Phase(model.Phase),
		Bottleneck:          economy.Bottleneck(model.Bottleneck),
		ProgressToNextLevel: model.Progress,
	}

	// Malformed JSON columns degrade to zero values rather than failing the
	// read; the caller's sanity check then falls back to defaults.
	if model.Budget != "" {
		_ = json.Unmarshal([]byte(model.Budget), &state.Budget)
	}
	if model.Workforce != "" {
		var wire workforceWire
		if err := json.Unmarshal([]byte(model.Workforce), &wire); err == nil {
			state.Workforce = economy.WorkforceRequirements{
				Targets: namesToRoleKeys(wire.Targets),
				Gaps:    namesToRoleKeys(wire.Gaps),
			}
		}
	}
	if model.Transition != "" {
		_ = json.Unmarshal([]byte(model.Transition), &state.Transition)
	}
	if model.Advice != "" {
		_ = json.Unmarshal([]byte(model.Advice), &state.Recommendations)
	}

	return state, nil
}

func roleKeysToNames(m map[colony.Role]int) map[string]int {
	if m == nil {
		return nil
	}
	out := make(map[string]int, len(m))
	for role, n := range m {
		out[role.String()] = n
	}
	return out
}

func namesToRoleKeys(m map[string]int) map[colony.Role]int {
	if m == nil {
		return nil
	}
	out := make(map[colony.Role]int, len(m))
	for name, n := range m {
		role, ok := colony.ParseRole(name)
		if !ok {
			continue // Skip roles this build no longer knows
		}
		out[role] = n
	}
	return out
}
