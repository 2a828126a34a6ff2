package escalation

import (
	"context"
	"fmt"

	"dispatch/pkg/logger"
)

// Sweeper feeds orders that crossed the threshold without a further update into
// the monitor. Without it escalation only happens when some update touches the row.
type Sweeper struct {
	log     monitorLogger
	orders  OrderRepository
	monitor *Monitor
}

func NewSweeper(log monitorLogger, orders OrderRepository, monitor *Monitor) *Sweeper {
	return &Sweeper{
		log:     log.With(logger.NewField("component", "escalation_sweeper")),
		orders:  orders,
		monitor: monitor,
	}
}

// Sweep returns how many orders were newly escalated.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	now := s.monitor.clock.Now()

	orders, err := s.orders.ListAwaitingDelivery(ctx, now.Add(-Threshold))
	if err != nil {
		return 0, fmt.Errorf("list awaiting delivery: %w", err)
	}

	escalated := 0
	for _, order := range orders {
		if s.monitor.Observe(ctx, order, now) {
			escalated++
		}
	}

	if escalated > 0 {
		s.log.With(logger.NewField("escalated", escalated)).Info("escalation sweep")
	}
	return escalated, nil
}
