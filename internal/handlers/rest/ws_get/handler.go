package ws_get

import (
	"net/http"

	"github.com/gorilla/mux"

	"dispatch/internal/pkg/push"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	audience, err := push.ParseAudience(mux.Vars(r)["audience"])
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	// The upgrader answers the request itself on failure.
	if err := h.service.ServeWS(w, r, audience); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("audience", audience),
		).Warn("websocket upgrade")
	}
}
