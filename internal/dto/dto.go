// Package dto holds the JSON shapes served over REST and pushed over websockets.
package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type Message struct {
	Message string `json:"message"`
}

type CustomerContact struct {
	Name         string  `json:"name"`
	MobileNumber *string `json:"mobile_number"`
}

type PendingOrder struct {
	ID                       string           `json:"id"`
	OrderNumber              string           `json:"order_number"`
	ServiceType              string           `json:"service_type"`
	TotalAmount              decimal.Decimal  `json:"total_amount"`
	DeliveryStatus           string           `json:"delivery_status"`
	DeliveryAddress          *string          `json:"delivery_address"`
	DeliveryInstructions     *string          `json:"delivery_instructions"`
	EstimatedDeliveryMinutes int              `json:"estimated_delivery_minutes"`
	DeliveryETA              *time.Time       `json:"delivery_eta"`
	PanchayatID              string           `json:"panchayat_id"`
	WardNumber               *int             `json:"ward_number"`
	CreatedAt                time.Time        `json:"created_at"`
	Customer                 *CustomerContact `json:"customer"`
	CutoffAt                 time.Time        `json:"cutoff_at"`
	SecondsRemaining         int              `json:"seconds_remaining"`
}

type PendingOrders struct {
	ShowAlert bool           `json:"show_alert"`
	Orders    []PendingOrder `json:"orders"`
}

type UnacceptedOrder struct {
	ID                  string          `json:"id"`
	OrderNumber         string          `json:"order_number"`
	ServiceType         string          `json:"service_type"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	DeliveryAddress     *string         `json:"delivery_address"`
	PanchayatID         string          `json:"panchayat_id"`
	PanchayatName       string          `json:"panchayat_name"`
	WardNumber          *int            `json:"ward_number"`
	ReadySince          time.Time       `json:"ready_since"`
	WaitingSeconds      int             `json:"waiting_seconds"`
	WaitingLabel        string          `json:"waiting_label"`
	AvailableStaffCount int             `json:"available_staff_count"`
}

type UnacceptedOrders struct {
	ShowAlert bool              `json:"show_alert"`
	Orders    []UnacceptedOrder `json:"orders"`
}

type TimeRemaining struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

type SlotWindow struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	SlotType          string         `json:"slot_type"`
	StartTime         string         `json:"start_time"`
	EndTime           string         `json:"end_time"`
	CutoffHoursBefore int            `json:"cutoff_hours_before"`
	IsOrderingOpen    bool           `json:"is_ordering_open"`
	TimeUntilCutoff   *TimeRemaining `json:"time_until_cutoff"`
	StatusLabel       string         `json:"status_label"`
}

type SlotWindows struct {
	ComputedAt time.Time    `json:"computed_at"`
	Slots      []SlotWindow `json:"slots"`
}

type InvalidateOrders struct {
	Keys []string `json:"keys"`
}
