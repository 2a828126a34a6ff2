package escalation_sweep

import (
	"context"
	"time"
)

// EscalationSweep catches ready orders that went stale without a change event,
// for instance while the service was down.
type EscalationSweep struct {
	sweeper  Sweeper
	interval time.Duration
}

func New(sweeper Sweeper, interval time.Duration) *EscalationSweep {
	return &EscalationSweep{
		sweeper:  sweeper,
		interval: interval,
	}
}

func (e *EscalationSweep) TTL() time.Duration {
	return e.interval
}

func (e *EscalationSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, e.interval)
	defer cancel()

	_, err := e.sweeper.Sweep(ctxWithTimeout)
	return err
}

func (e *EscalationSweep) Info() string {
	return "escalation sweep"
}
