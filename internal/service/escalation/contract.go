//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=escalation_test
package escalation

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type monitorLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type PanchayatRepository interface {
	GetPanchayatNames(ctx context.Context, ids []string) (map[string]string, error)
}

type StaffRepository interface {
	CountAvailableStaff(ctx context.Context, panchayatID string) (int, error)
}

type OrderRepository interface {
	ListAwaitingDelivery(ctx context.Context, readyBefore time.Time) ([]entities.Order, error)
}

type TxManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

type Notifier interface {
	NotifyUnacceptedOrder(ctx context.Context, order entities.UnacceptedAdminAlertOrder) error
}

type Clock interface {
	Now() time.Time
}
