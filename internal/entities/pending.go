package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PendingDeliveryOrder is an order offered to the current staff member and
// awaiting acceptance until CutoffAt.
type PendingDeliveryOrder struct {
	ID                       string
	OrderNumber              string
	ServiceType              ServiceType
	TotalAmount              decimal.Decimal
	DeliveryStatus           DeliveryStatusType
	DeliveryAddress          *string
	DeliveryInstructions     *string
	EstimatedDeliveryMinutes int
	DeliveryETA              *time.Time
	PanchayatID              string
	WardNumber               *int
	CreatedAt                time.Time
	Customer                 *CustomerContact
	CutoffAt                 time.Time
	SecondsRemaining         int
}

func NewPendingDeliveryOrder(order Order, customer *CustomerContact, cutoffAt time.Time) PendingDeliveryOrder {
	return PendingDeliveryOrder{
		ID:                       order.ID,
		OrderNumber:              order.OrderNumber,
		ServiceType:              order.ServiceType,
		TotalAmount:              order.TotalAmount,
		DeliveryStatus:           order.DeliveryStatus,
		DeliveryAddress:          order.DeliveryAddress,
		DeliveryInstructions:     order.DeliveryInstructions,
		EstimatedDeliveryMinutes: order.EstimatedMinutes(),
		DeliveryETA:              order.DeliveryETA,
		PanchayatID:              order.PanchayatID,
		WardNumber:               order.WardNumber,
		CreatedAt:                order.CreatedAt,
		Customer:                 customer,
		CutoffAt:                 cutoffAt,
	}
}

type PendingOrdersSnapshot struct {
	ShowAlert bool
	Orders    []PendingDeliveryOrder
}
