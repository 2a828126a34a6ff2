//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pending_order_delete_test
package pending_order_delete

import (
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Remove(orderID string) bool
}
