//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bridge_test
package bridge

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/escalation"
	"dispatch/internal/service/pending"
	"dispatch/pkg/logger"
)

type bridgeLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type PendingRegistry interface {
	Reserve(order entities.Order) (*pending.Reservation, bool)
	Complete(ctx context.Context, res *pending.Reservation) bool
	Remove(orderID string) bool
}

type EscalationMonitor interface {
	Admit(order entities.Order, at time.Time) (*escalation.Reservation, bool)
	Complete(ctx context.Context, res *escalation.Reservation) bool
}

type Invalidator interface {
	InvalidateOrders(ctx context.Context, keys []string) error
}
