package escalation

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

// Threshold is how long a ready order may wait for a delivery partner before
// administrators are alerted.
const Threshold = 180 * time.Second

// Monitor keeps the set of ready orders nobody accepted in time. It has no timer
// of its own: the threshold is checked whenever an update for the order is observed.
type Monitor struct {
	log           monitorLogger
	panchayats    PanchayatRepository
	staff         StaffRepository
	txManager     TxManager
	notifier      Notifier
	clock         Clock
	enrichTimeout time.Duration

	mu       sync.Mutex
	entries  map[string]*entities.UnacceptedAdminAlertOrder
	order    []string
	inflight map[string]*Reservation
	alert    bool
}

// Reservation holds an order id while its alert details are being loaded.
type Reservation struct {
	order      entities.Order
	readySince time.Time
	cancelled  bool
}

func New(
	log monitorLogger,
	panchayats PanchayatRepository,
	staff StaffRepository,
	txManager TxManager,
	notifier Notifier,
	clock Clock,
	enrichTimeout time.Duration,
) *Monitor {
	return &Monitor{
		log:           log.With(logger.NewField("component", "escalation_monitor")),
		panchayats:    panchayats,
		staff:         staff,
		txManager:     txManager,
		notifier:      notifier,
		clock:         clock,
		enrichTimeout: enrichTimeout,
		entries:       make(map[string]*entities.UnacceptedAdminAlertOrder),
		inflight:      make(map[string]*Reservation),
	}
}

// Observe applies one order update seen at instant at and reports whether the
// order was escalated by it.
func (m *Monitor) Observe(ctx context.Context, order entities.Order, at time.Time) bool {
	res, ok := m.Admit(order, at)
	if !ok {
		return false
	}
	return m.Complete(ctx, res)
}

// Admit is the non-blocking half of Observe. Assigned orders are dropped right
// away. An order that qualifies for escalation is reserved and must be passed to
// Complete.
func (m *Monitor) Admit(order entities.Order, at time.Time) (*Reservation, bool) {
	if order.IsAssigned() {
		m.Remove(order.ID)
		return nil, false
	}

	if !order.AwaitingDelivery() {
		return nil, false
	}

	readySince := order.ReadyStatusAt()
	if at.Sub(readySince) <= Threshold {
		return nil, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[order.ID]; ok {
		return nil, false
	}
	if _, ok := m.inflight[order.ID]; ok {
		return nil, false
	}

	res := &Reservation{
		order:      order,
		readySince: readySince,
	}
	m.inflight[order.ID] = res
	return res, true
}

// Complete loads the panchayat name and staff availability for a reserved order
// and raises the admin alert.
func (m *Monitor) Complete(ctx context.Context, res *Reservation) bool {
	order := res.order
	orderLog := m.log.With(
		logger.NewField("order", order.ID),
		logger.NewField("panchayat", order.PanchayatID),
	)

	details := m.details(ctx, orderLog, order)

	m.mu.Lock()
	delete(m.inflight, order.ID)
	if res.cancelled || ctx.Err() != nil {
		m.mu.Unlock()
		EscalationsTotal.WithLabelValues("cancelled").Inc()
		return false
	}

	entry := &entities.UnacceptedAdminAlertOrder{
		Order:               order,
		ReadySince:          res.readySince,
		PanchayatName:       details.PanchayatName,
		AvailableStaffCount: details.AvailableStaffCount,
	}
	m.entries[order.ID] = entry
	m.order = append(m.order, order.ID)
	m.alert = true
	UnacceptedOrdersGauge.Set(float64(len(m.entries)))

	snapshot := *entry
	snapshot.Waiting = m.clock.Now().Sub(snapshot.ReadySince)
	m.mu.Unlock()

	EscalationsTotal.WithLabelValues("escalated").Inc()
	orderLog.With(
		logger.NewField("waiting", snapshot.WaitingLabel()),
		logger.NewField("available_staff", snapshot.AvailableStaffCount),
	).Warn("order not accepted by delivery staff, escalated")

	if err := m.notifier.NotifyUnacceptedOrder(ctx, snapshot); err != nil {
		orderLog.With(logger.NewField("error", err)).Debug("unaccepted order notification failed")
	}

	return true
}

// Remove drops the alert of an order. Unknown ids are ignored.
func (m *Monitor) Remove(orderID string) bool {
	m.mu.Lock()
	if res, ok := m.inflight[orderID]; ok {
		res.cancelled = true
	}

	_, ok := m.entries[orderID]
	if ok {
		delete(m.entries, orderID)
		if i := slices.Index(m.order, orderID); i >= 0 {
			m.order = slices.Delete(m.order, i, i+1)
		}
		UnacceptedOrdersGauge.Set(float64(len(m.entries)))
	}
	m.mu.Unlock()

	if ok {
		EscalationsTotal.WithLabelValues("removed").Inc()
		m.log.With(logger.NewField("order", orderID)).Info("unaccepted order alert removed")
	}
	return ok
}

func (m *Monitor) DismissAlert() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.alert = false
}

func (m *Monitor) ShowAlert() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.alert && len(m.entries) > 0
}

func (m *Monitor) UnacceptedOrders() []entities.UnacceptedAdminAlertOrder {
	return m.Snapshot().Orders
}

// Snapshot returns the escalated orders in escalation order with their waiting
// time measured now.
func (m *Monitor) Snapshot() entities.UnacceptedOrdersSnapshot {
	now := m.clock.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	orders := make([]entities.UnacceptedAdminAlertOrder, 0, len(m.order))
	for _, id := range m.order {
		entry := *m.entries[id]
		entry.Waiting = now.Sub(entry.ReadySince)
		orders = append(orders, entry)
	}

	return entities.UnacceptedOrdersSnapshot{
		ShowAlert: m.alert && len(m.entries) > 0,
		Orders:    orders,
	}
}

func (m *Monitor) details(ctx context.Context, log logger.Logger, order entities.Order) entities.EscalationDetails {
	details := entities.EscalationDetails{
		PanchayatName: entities.UnknownPanchayatName,
	}

	ctx, cancel := context.WithTimeout(ctx, m.enrichTimeout)
	defer cancel()

	err := m.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		names, err := m.panchayats.GetPanchayatNames(ctx, []string{order.PanchayatID})
		if err != nil {
			return fmt.Errorf("panchayat names: %w", err)
		}
		if name := names[order.PanchayatID]; name != "" {
			details.PanchayatName = name
		}

		count, err := m.staff.CountAvailableStaff(ctx, order.PanchayatID)
		if err != nil {
			return fmt.Errorf("available staff: %w", err)
		}
		details.AvailableStaffCount = count
		return nil
	})
	if err != nil {
		log.With(logger.NewField("error", err)).Warn("escalation details unavailable")
	}

	return details
}
