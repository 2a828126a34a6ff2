//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=slot_test
package slot

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	ListActiveSlots(ctx context.Context) ([]entities.Slot, error)
}

type Calculator interface {
	ComputeWindow(slot entities.Slot, now time.Time) entities.SlotWindowState
}

type Clock interface {
	Now() time.Time
}
