package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultEstimatedDeliveryMinutes = 60

type ServiceType string

const (
	ServiceIndoorEvents ServiceType = "indoor_events"
	ServiceCloudKitchen ServiceType = "cloud_kitchen"
	ServiceHomemade     ServiceType = "homemade"
)

func (s ServiceType) String() string {
	return string(s)
}

// RequiresDelivery reports whether orders of this type are handed to delivery staff.
func (s ServiceType) RequiresDelivery() bool {
	return s == ServiceCloudKitchen || s == ServiceHomemade
}

type CookStatusType string

const (
	CookPending   CookStatusType = "pending"
	CookAccepted  CookStatusType = "accepted"
	CookPreparing CookStatusType = "preparing"
	CookReady     CookStatusType = "ready"
)

func (s CookStatusType) String() string {
	return string(s)
}

type DeliveryStatusType string

const (
	DeliveryPending   DeliveryStatusType = "pending"
	DeliveryAssigned  DeliveryStatusType = "assigned"
	DeliveryPickedUp  DeliveryStatusType = "picked_up"
	DeliveryDelivered DeliveryStatusType = "delivered"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

// Order is the post-update row of the orders table as delivered by the change feed.
type Order struct {
	ID                       string
	OrderNumber              string
	CustomerID               string
	ServiceType              ServiceType
	TotalAmount              decimal.Decimal
	CookStatus               CookStatusType
	DeliveryStatus           DeliveryStatusType
	AssignedDeliveryID       *string
	DeliveryAddress          *string
	DeliveryInstructions     *string
	EstimatedDeliveryMinutes *int
	DeliveryETA              *time.Time
	PanchayatID              string
	WardNumber               *int
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

func (o Order) IsAssigned() bool {
	return o.AssignedDeliveryID != nil && *o.AssignedDeliveryID != ""
}

// ReadyStatusAt is the instant the cook marked the order ready. The orders table
// has no dedicated column for it, so the last update time stands in.
func (o Order) ReadyStatusAt() time.Time {
	return o.UpdatedAt
}

// AwaitingDelivery reports a cook-ready, unassigned order of a delivery service type.
func (o Order) AwaitingDelivery() bool {
	return o.CookStatus == CookReady &&
		o.DeliveryStatus == DeliveryPending &&
		!o.IsAssigned() &&
		o.ServiceType.RequiresDelivery()
}

func (o Order) EstimatedMinutes() int {
	if o.EstimatedDeliveryMinutes == nil || *o.EstimatedDeliveryMinutes == 0 {
		return DefaultEstimatedDeliveryMinutes
	}
	return *o.EstimatedDeliveryMinutes
}

type CustomerContact struct {
	Name         string
	MobileNumber *string
}
