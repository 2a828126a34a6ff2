package order

import (
	"fmt"

	"github.com/shopspring/decimal"

	"dispatch/internal/entities"
)

func ToDomain(o *OrderDB) (entities.Order, error) {
	amount, err := decimal.NewFromString(o.TotalAmount)
	if err != nil {
		return entities.Order{}, fmt.Errorf("total amount %q: %w", o.TotalAmount, err)
	}

	return entities.Order{
		ID:                       o.ID,
		OrderNumber:              o.OrderNumber,
		CustomerID:               o.CustomerID,
		ServiceType:              entities.ServiceType(o.ServiceType),
		TotalAmount:              amount,
		CookStatus:               entities.CookStatusType(o.CookStatus),
		DeliveryStatus:           entities.DeliveryStatusType(o.DeliveryStatus),
		AssignedDeliveryID:       o.AssignedDeliveryID,
		DeliveryAddress:          o.DeliveryAddress,
		DeliveryInstructions:     o.DeliveryInstructions,
		EstimatedDeliveryMinutes: intPtr(o.EstimatedDeliveryMinutes),
		DeliveryETA:              o.DeliveryETA,
		PanchayatID:              o.PanchayatID,
		WardNumber:               intPtr(o.WardNumber),
		CreatedAt:                o.CreatedAt,
		UpdatedAt:                o.UpdatedAt,
	}, nil
}

func intPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}
