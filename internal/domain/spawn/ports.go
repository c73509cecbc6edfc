package spawn

import "context"

// ActionStatus is the synchronous result of a fire-and-forget production
// command. Failures are never retried within the same tick; the pipeline
// simply re-evaluates next tick.
type ActionStatus int

const (
	StatusOK ActionStatus = iota
	StatusInsufficientEnergy
	StatusBusy
	StatusRejected
)

func (s ActionStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusInsufficientEnergy:
		return "insufficient-energy"
	case StatusBusy:
		return "busy"
	case StatusRejected:
		return "rejected"
	}
	return "unknown"
}

// Actions is the external action interface the executor issues commands
// through. At most one SpawnUnit and one RenewNearestExpiring call are made
// per colony per tick.
type Actions interface {
	// SpawnUnit asks the colony's spawner to produce a unit.
	SpawnUnit(ctx context.Context, colonyName string, req *Request) (ActionStatus, error)

	// RenewNearestExpiring renews the eligible near-expiry unit closest to
	// the spawner, if any.
	RenewNearestExpiring(ctx context.Context, colonyName string) (ActionStatus, error)
}
