package pending_orders_dismiss_post

import (
	"net/http"
)

type Handler struct {
	service Service
}

func New(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	h.service.DismissAlert()
	w.WriteHeader(http.StatusNoContent)
}
