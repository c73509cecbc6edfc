package production

import (
	"context"
	"fmt"
	"log"

	"github.com/jappenzeller/colonybot/internal/domain/spawn"
)

// ProductionExecutor issues production commands through the external action
// interface: at most one spawn and, independently, at most one renewal per
// tick. Rejections are logged and left for the next tick's pass to
// re-evaluate; nothing is retried within the tick.
type ProductionExecutor struct {
	actions spawn.Actions
}

// NewProductionExecutor creates an executor issuing through the given
// action interface
func NewProductionExecutor(actions spawn.Actions) *ProductionExecutor {
	return &ProductionExecutor{actions: actions}
}

// Spawn issues the spawn command for the request.
func (e *ProductionExecutor) Spawn(ctx context.Context, colonyName string, req *spawn.Request) (spawn.ActionStatus, error) {
	status, err := e.actions.SpawnUnit(ctx, colonyName, req)
	if err != nil {
		return spawn.StatusRejected, fmt.Errorf("spawn %s in %s: %w", req.Role, colonyName, err)
	}
	if status != spawn.StatusOK {
		log.Printf("[%s] spawn %s (%d energy) not accepted: %s", colonyName, req.Role, req.Cost, status)
	}
	return status, nil
}

// Renew issues the renewal command for the nearest eligible near-expiry
// unit.
func (e *ProductionExecutor) Renew(ctx context.Context, colonyName string) (spawn.ActionStatus, error) {
	status, err := e.actions.RenewNearestExpiring(ctx, colonyName)
	if err != nil {
		return spawn.StatusRejected, fmt.Errorf("renew in %s: %w", colonyName, err)
	}
	if status != spawn.StatusOK {
		log.Printf("[%s] renewal not accepted: %s", colonyName, status)
	}
	return status, nil
}
