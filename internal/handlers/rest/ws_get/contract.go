//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ws_get_test
package ws_get

import (
	"net/http"

	"dispatch/internal/pkg/push"
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
	ServeWS(w http.ResponseWriter, r *http.Request, audience push.Audience) error
}
