package order

import "time"

type OrderDB struct {
	ID                       string
	OrderNumber              string
	CustomerID               string
	ServiceType              string
	TotalAmount              string
	CookStatus               string
	DeliveryStatus           string
	AssignedDeliveryID       *string
	DeliveryAddress          *string
	DeliveryInstructions     *string
	EstimatedDeliveryMinutes *int32
	DeliveryETA              *time.Time
	PanchayatID              string
	WardNumber               *int32
	CreatedAt                time.Time
	UpdatedAt                time.Time
}
