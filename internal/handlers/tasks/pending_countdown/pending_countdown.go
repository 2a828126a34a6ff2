package pending_countdown

import (
	"context"
	"time"
)

// Interval is the countdown resolution shown to staff.
const Interval = time.Second

type PendingCountdown struct {
	registry Registry
}

func New(registry Registry) *PendingCountdown {
	return &PendingCountdown{
		registry: registry,
	}
}

func (p *PendingCountdown) TTL() time.Duration {
	return Interval
}

func (p *PendingCountdown) Do(_ context.Context) error {
	p.registry.Tick()
	return nil
}

func (p *PendingCountdown) Info() string {
	return "pending countdown"
}
