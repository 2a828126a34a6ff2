//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pending_test
package pending

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type registryLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type CustomerRepository interface {
	GetCustomerContact(ctx context.Context, customerID string) (*entities.CustomerContact, error)
}

// Notifier delivers the "new order to accept" cue to the staff UI.
type Notifier interface {
	NotifyPendingOrder(ctx context.Context, order entities.PendingDeliveryOrder) error
}

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type Clock interface {
	Now() time.Time
}
