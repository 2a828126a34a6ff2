//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=slot_windows_get_test
package slot_windows_get

import (
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

type Service interface {
	Windows() ([]entities.SlotWindow, time.Time)
}
