package push

import (
	"context"
	"encoding/json"
	"fmt"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
)

const (
	EventPendingOrderAlert    = "pending_order.alert"
	EventUnacceptedOrderAlert = "unaccepted_order.alert"
	EventOrdersInvalidate     = "orders.invalidate"
)

// Notifier turns dispatch notifications into hub events.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

// NotifyPendingOrder cues connected staff sessions to play the alert for a new order.
func (n *Notifier) NotifyPendingOrder(ctx context.Context, order entities.PendingDeliveryOrder) error {
	return n.publish(ctx, AudienceStaff, EventPendingOrderAlert, dto.FromPendingOrder(order))
}

func (n *Notifier) NotifyUnacceptedOrder(ctx context.Context, order entities.UnacceptedAdminAlertOrder) error {
	return n.publish(ctx, AudienceAdmin, EventUnacceptedOrderAlert, dto.FromUnacceptedOrder(order))
}

// InvalidateOrders asks staff sessions to refetch the listed order collections.
func (n *Notifier) InvalidateOrders(ctx context.Context, keys []string) error {
	return n.publish(ctx, AudienceStaff, EventOrdersInvalidate, dto.InvalidateOrders{Keys: keys})
}

func (n *Notifier) publish(ctx context.Context, audience Audience, eventType string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", eventType, err)
	}

	return n.hub.Broadcast(ctx, audience, Event{Type: eventType, Payload: raw})
}
