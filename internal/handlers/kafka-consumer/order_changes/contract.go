//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_changes_test
package order_changes

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Publisher interface {
	Publish(ctx context.Context, event entities.OrderEvent) error
}

type Clock interface {
	Now() time.Time
}
