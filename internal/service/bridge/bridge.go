package bridge

import (
	"context"
	"errors"
	"sync"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/eligibility"
	"dispatch/pkg/logger"
)

// Order list keys refreshed on staff screens once an order is taken.
const (
	DeliveryOrdersKey          = "delivery-orders"
	AvailableDeliveryOrdersKey = "available-delivery-orders"
)

const defaultBufferSize = 64

var ErrClosed = errors.New("event bridge is closed")

// Bridge is the single consumer of order change events. It routes ready orders
// to the pending registry while a staff subscription is active and every update
// to the escalation monitor.
type Bridge struct {
	log         bridgeLogger
	pending     PendingRegistry
	escalation  EscalationMonitor
	invalidator Invalidator
	events      chan entities.OrderEvent
	done        chan struct{}

	mu          sync.Mutex
	fingerprint string
	sub         *subscription
	wg          sync.WaitGroup
	closed      bool
}

// subscription scopes the work started on behalf of one staff profile.
type subscription struct {
	profile *entities.DeliveryStaffProfile
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func New(
	log bridgeLogger,
	pending PendingRegistry,
	escalation EscalationMonitor,
	invalidator Invalidator,
) *Bridge {
	return &Bridge{
		log:         log.With(logger.NewField("component", "event_bridge")),
		pending:     pending,
		escalation:  escalation,
		invalidator: invalidator,
		events:      make(chan entities.OrderEvent, defaultBufferSize),
		done:        make(chan struct{}),
	}
}

// Publish hands an event to the consumer loop. It blocks while the buffer is full.
func (b *Bridge) Publish(ctx context.Context, event entities.OrderEvent) error {
	select {
	case <-b.done:
		return ErrClosed
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.done:
		return ErrClosed
	case b.events <- event:
		return nil
	}
}

// Run consumes published events until ctx is done, then tears down the active
// subscription and waits for the work it started.
func (b *Bridge) Run(ctx context.Context) error {
	b.log.Info("event bridge started")
	defer b.shutdown()

	for {
		select {
		case <-ctx.Done():
			b.log.Info("event bridge stopping")
			return nil
		case event := <-b.events:
			b.dispatch(ctx, event)
		}
	}
}

// SetProfile activates routing of ready orders for profile. A profile that does
// not accept dispatch ends the subscription. Routing is rebuilt only when a field
// affecting it changed; tracked entries survive the rebuild.
func (b *Bridge) SetProfile(profile *entities.DeliveryStaffProfile) {
	fingerprint := ""
	if profile.AcceptsDispatch() {
		fingerprint = profile.Fingerprint()
	}

	b.mu.Lock()
	if b.closed || fingerprint == b.fingerprint {
		b.mu.Unlock()
		return
	}

	old := b.sub
	b.sub = nil
	b.fingerprint = fingerprint
	if fingerprint != "" {
		ctx, cancel := context.WithCancel(context.Background())
		b.sub = &subscription{
			profile: profile,
			ctx:     ctx,
			cancel:  cancel,
		}
	}
	b.mu.Unlock()

	if old != nil {
		old.stop()
	}

	if fingerprint == "" {
		b.log.Info("staff subscription closed")
		return
	}
	b.log.With(
		logger.NewField("user", profile.UserID),
		logger.NewField("staff_type", profile.StaffType.String()),
	).Info("staff subscription opened")
}

// Subscribed reports whether ready orders are currently routed to the pending registry.
func (b *Bridge) Subscribed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.sub != nil
}

func (b *Bridge) dispatch(ctx context.Context, event entities.OrderEvent) {
	switch e := event.(type) {
	case entities.OrderReady:
		b.routeReady(e)
	case entities.OrderUpdated:
		b.routeUpdated(ctx, e)
	default:
		b.log.Warn("unknown order event dropped")
	}
}

func (b *Bridge) routeReady(event entities.OrderReady) {
	order := event.Order

	b.mu.Lock()
	defer b.mu.Unlock()

	sub := b.sub
	if sub == nil {
		return
	}

	if !order.AwaitingDelivery() || !eligibility.Matches(order, sub.profile) {
		return
	}

	res, ok := b.pending.Reserve(order)
	if !ok {
		return
	}

	sub.wg.Add(1)
	go func() {
		defer sub.wg.Done()
		b.pending.Complete(sub.ctx, res)
	}()
}

func (b *Bridge) routeUpdated(ctx context.Context, event entities.OrderUpdated) {
	order := event.Order

	if order.IsAssigned() {
		b.pending.Remove(order.ID)
		if b.Subscribed() {
			keys := []string{DeliveryOrdersKey, AvailableDeliveryOrdersKey}
			if err := b.invalidator.InvalidateOrders(ctx, keys); err != nil {
				b.log.With(
					logger.NewField("order", order.ID),
					logger.NewField("error", err),
				).Debug("order list invalidation failed")
			}
		}
	}

	res, ok := b.escalation.Admit(order, event.ReceivedAt)
	if !ok {
		return
	}

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.escalation.Complete(ctx, res)
	}()
}

func (b *Bridge) shutdown() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	close(b.done)
	sub := b.sub
	b.sub = nil
	b.fingerprint = ""
	b.mu.Unlock()

	if sub != nil {
		sub.stop()
	}
	b.wg.Wait()

	b.log.Info("event bridge stopped")
}

func (s *subscription) stop() {
	s.cancel()
	s.wg.Wait()
}
