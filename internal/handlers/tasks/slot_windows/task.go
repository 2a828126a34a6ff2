package slot_windows

import (
	"context"
	"time"
)

type SlotWindows struct {
	service  Service
	interval time.Duration
}

func New(service Service, interval time.Duration) *SlotWindows {
	return &SlotWindows{
		service:  service,
		interval: interval,
	}
}

func (s *SlotWindows) TTL() time.Duration {
	return s.interval
}

func (s *SlotWindows) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	return s.service.Refresh(ctxWithTimeout)
}

func (s *SlotWindows) Info() string {
	return "slot windows"
}
