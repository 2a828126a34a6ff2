package order_changes

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"dispatch/internal/entities"
)

const (
	changeTypeUpdate = "UPDATE"
	ordersTable      = "orders"
)

var errMissingOrderID = errors.New("order record has no id")

// changeEvent is a row change captured from the orders database.
type changeEvent struct {
	Type            string          `json:"type"`
	Schema          string          `json:"schema"`
	Table           string          `json:"table"`
	CommitTimestamp time.Time       `json:"commit_timestamp"`
	Record          json.RawMessage `json:"record"`
	OldRecord       json.RawMessage `json:"old_record"`
}

type orderRecord struct {
	ID                       string          `json:"id"`
	OrderNumber              string          `json:"order_number"`
	CustomerID               string          `json:"customer_id"`
	ServiceType              string          `json:"service_type"`
	TotalAmount              decimal.Decimal `json:"total_amount"`
	CookStatus               string          `json:"cook_status"`
	DeliveryStatus           string          `json:"delivery_status"`
	AssignedDeliveryID       *string         `json:"assigned_delivery_id"`
	DeliveryAddress          *string         `json:"delivery_address"`
	DeliveryInstructions     *string         `json:"delivery_instructions"`
	EstimatedDeliveryMinutes *int            `json:"estimated_delivery_minutes"`
	DeliveryETA              *time.Time      `json:"delivery_eta"`
	PanchayatID              string          `json:"panchayat_id"`
	WardNumber               *int            `json:"ward_number"`
	CreatedAt                time.Time       `json:"created_at"`
	UpdatedAt                time.Time       `json:"updated_at"`
}

func (r orderRecord) toEntity() (entities.Order, error) {
	if r.ID == "" {
		return entities.Order{}, errMissingOrderID
	}

	return entities.Order{
		ID:                       r.ID,
		OrderNumber:              r.OrderNumber,
		CustomerID:               r.CustomerID,
		ServiceType:              entities.ServiceType(r.ServiceType),
		TotalAmount:              r.TotalAmount,
		CookStatus:               entities.CookStatusType(r.CookStatus),
		DeliveryStatus:           entities.DeliveryStatusType(r.DeliveryStatus),
		AssignedDeliveryID:       r.AssignedDeliveryID,
		DeliveryAddress:          r.DeliveryAddress,
		DeliveryInstructions:     r.DeliveryInstructions,
		EstimatedDeliveryMinutes: r.EstimatedDeliveryMinutes,
		DeliveryETA:              r.DeliveryETA,
		PanchayatID:              r.PanchayatID,
		WardNumber:               r.WardNumber,
		CreatedAt:                r.CreatedAt,
		UpdatedAt:                r.UpdatedAt,
	}, nil
}
