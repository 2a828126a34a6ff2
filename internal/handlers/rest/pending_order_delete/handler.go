package pending_order_delete

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

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
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if !h.service.Remove(id.String()) {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	h.log.Info("order removed", logger.NewField("order_id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}
