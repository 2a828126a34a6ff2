package pending

import (
	"context"
	"slices"
	"sync"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

// AcceptanceWindow is how long a staff member has to accept an offered order.
const AcceptanceWindow = 120 * time.Second

// Registry tracks orders offered to the current delivery staff member until they
// are accepted, expire or get dismissed. All mutations are serialized by mu;
// customer lookups happen outside of it.
type Registry struct {
	log           registryLogger
	customers     CustomerRepository
	notifier      Notifier
	retrier       Retrier
	clock         Clock
	lookupTimeout time.Duration

	mu       sync.Mutex
	entries  map[string]*entities.PendingDeliveryOrder
	order    []string
	inflight map[string]*Reservation
	alert    bool
}

func New(
	log registryLogger,
	customers CustomerRepository,
	notifier Notifier,
	retrier Retrier,
	clock Clock,
	lookupTimeout time.Duration,
) *Registry {
	return &Registry{
		log:           log.With(logger.NewField("component", "pending_registry")),
		customers:     customers,
		notifier:      notifier,
		retrier:       retrier,
		clock:         clock,
		lookupTimeout: lookupTimeout,
		entries:       make(map[string]*entities.PendingDeliveryOrder),
		inflight:      make(map[string]*Reservation),
	}
}

// Reservation holds an order id while its registration is being completed.
type Reservation struct {
	order     entities.Order
	cutoffAt  time.Time
	cancelled bool
}

// Register starts the acceptance countdown for order. It returns false when the
// order is already tracked, when a registration for it is in flight, or when the
// registration was cancelled before it completed.
func (r *Registry) Register(ctx context.Context, order entities.Order) bool {
	res, ok := r.Reserve(order)
	if !ok {
		return false
	}
	return r.Complete(ctx, res)
}

// Reserve claims order's id and fixes its cutoff without blocking. The caller
// must pass the reservation to Complete. A Remove of the same id issued before
// Complete finishes cancels the registration.
func (r *Registry) Reserve(order entities.Order) (*Reservation, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.trackedLocked(order.ID) {
		PendingOrdersTotal.WithLabelValues(outcomeDuplicate).Inc()
		return nil, false
	}

	res := &Reservation{
		order:    order,
		cutoffAt: r.clock.Now().Add(AcceptanceWindow),
	}
	r.inflight[order.ID] = res
	return res, true
}

// Complete attaches customer details to a reserved order and starts tracking it.
func (r *Registry) Complete(ctx context.Context, res *Reservation) bool {
	order := res.order
	orderLog := r.log.With(logger.NewField("order", order.ID))

	customer := r.lookupCustomer(ctx, orderLog, order.CustomerID)

	r.mu.Lock()
	delete(r.inflight, order.ID)
	if res.cancelled || ctx.Err() != nil {
		r.mu.Unlock()
		PendingOrdersTotal.WithLabelValues(outcomeCancelled).Inc()
		orderLog.Info("pending order registration cancelled")
		return false
	}

	entry := entities.NewPendingDeliveryOrder(order, customer, res.cutoffAt)
	entry.SecondsRemaining = secondsUntilCeil(res.cutoffAt, r.clock.Now())
	if entry.SecondsRemaining == 0 {
		r.mu.Unlock()
		PendingOrdersTotal.WithLabelValues(outcomeExpired).Inc()
		orderLog.Warn("pending order expired before registration completed")
		return false
	}

	r.entries[order.ID] = &entry
	r.order = append(r.order, order.ID)
	r.alert = true
	PendingOrdersGauge.Set(float64(len(r.entries)))
	snapshot := entry
	r.mu.Unlock()

	PendingOrdersTotal.WithLabelValues(outcomeRegistered).Inc()
	orderLog.With(
		logger.NewField("cutoff_at", snapshot.CutoffAt),
		logger.NewField("panchayat", snapshot.PanchayatID),
	).Info("pending order registered")

	if err := r.notifier.NotifyPendingOrder(ctx, snapshot); err != nil {
		orderLog.With(logger.NewField("error", err)).Debug("pending order notification failed")
	}

	return true
}

// Tick recomputes the remaining time of every entry from its cutoff and drops the
// entries that reached zero. It returns the ids of the dropped entries.
func (r *Registry) Tick() []string {
	now := r.clock.Now()

	r.mu.Lock()
	var expired []string
	kept := r.order[:0]
	for _, id := range r.order {
		entry := r.entries[id]
		entry.SecondsRemaining = secondsUntil(entry.CutoffAt, now)
		if entry.SecondsRemaining > 0 {
			kept = append(kept, id)
			continue
		}
		delete(r.entries, id)
		expired = append(expired, id)
	}
	r.order = kept
	r.settleLocked()
	r.mu.Unlock()

	if len(expired) > 0 {
		PendingOrdersTotal.WithLabelValues(outcomeExpired).Add(float64(len(expired)))
		r.log.With(logger.NewField("orders", expired)).Info("pending orders expired")
	}
	return expired
}

// Remove stops tracking an order, either because somebody accepted it or because
// the staff member dismissed it. Removing an unknown id is a no-op. A registration
// of the same id that is still in flight is cancelled.
func (r *Registry) Remove(orderID string) bool {
	r.mu.Lock()
	if res, ok := r.inflight[orderID]; ok {
		res.cancelled = true
	}

	_, ok := r.entries[orderID]
	if ok {
		delete(r.entries, orderID)
		if i := slices.Index(r.order, orderID); i >= 0 {
			r.order = slices.Delete(r.order, i, i+1)
		}
		r.settleLocked()
	}
	r.mu.Unlock()

	if ok {
		PendingOrdersTotal.WithLabelValues(outcomeRemoved).Inc()
		r.log.With(logger.NewField("order", orderID)).Info("pending order removed")
	}
	return ok
}

// DismissAlert hides the alert; tracked entries keep counting down.
func (r *Registry) DismissAlert() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.alert = false
}

func (r *Registry) ShowAlert() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.alert && len(r.entries) > 0
}

// PendingOrders returns copies of the tracked entries in registration order.
func (r *Registry) PendingOrders() []entities.PendingDeliveryOrder {
	return r.Snapshot().Orders
}

func (r *Registry) Snapshot() entities.PendingOrdersSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := make([]entities.PendingDeliveryOrder, 0, len(r.order))
	for _, id := range r.order {
		orders = append(orders, *r.entries[id])
	}

	return entities.PendingOrdersSnapshot{
		ShowAlert: r.alert && len(r.entries) > 0,
		Orders:    orders,
	}
}

func (r *Registry) trackedLocked(orderID string) bool {
	if _, ok := r.entries[orderID]; ok {
		return true
	}
	_, ok := r.inflight[orderID]
	return ok
}

func (r *Registry) settleLocked() {
	if len(r.entries) == 0 {
		r.alert = false
	}
	PendingOrdersGauge.Set(float64(len(r.entries)))
}

func (r *Registry) lookupCustomer(ctx context.Context, log logger.Logger, customerID string) *entities.CustomerContact {
	if customerID == "" {
		return nil
	}

	lookupCtx, cancel := context.WithTimeout(ctx, r.lookupTimeout)
	defer cancel()

	var contact *entities.CustomerContact
	err := r.retrier.ExecuteWithContext(lookupCtx, func(ctx context.Context) error {
		found, err := r.customers.GetCustomerContact(ctx, customerID)
		if err != nil {
			return err
		}
		contact = found
		return nil
	})
	if err != nil {
		CustomerLookupFailuresTotal.Inc()
		log.With(
			logger.NewField("customer", customerID),
			logger.NewField("error", err),
		).Warn("customer lookup failed, registering without contact details")
		return nil
	}

	return contact
}

func secondsUntil(cutoffAt, now time.Time) int {
	remaining := cutoffAt.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(remaining / time.Second)
}

// secondsUntilCeil counts a started second as whole, so an entry whose lookup
// took a few milliseconds still starts from the full window.
func secondsUntilCeil(cutoffAt, now time.Time) int {
	remaining := cutoffAt.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int((remaining + time.Second - 1) / time.Second)
}
