package slot_windows_get

import (
	"encoding/json"
	"net/http"

	"dispatch/internal/dto"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	windows, computedAt := h.service.Windows()
	if computedAt.IsZero() {
		// Nothing loaded yet.
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	res := dto.SlotWindows{
		ComputedAt: computedAt,
		Slots:      make([]dto.SlotWindow, 0, len(windows)),
	}
	for _, window := range windows {
		res.Slots = append(res.Slots, dto.FromSlotWindow(window))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
