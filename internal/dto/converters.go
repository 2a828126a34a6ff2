package dto

import (
	"fmt"

	"dispatch/internal/entities"
)

func FromPendingOrder(o entities.PendingDeliveryOrder) PendingOrder {
	var customer *CustomerContact
	if o.Customer != nil {
		customer = &CustomerContact{
			Name:         o.Customer.Name,
			MobileNumber: o.Customer.MobileNumber,
		}
	}

	return PendingOrder{
		ID:                       o.ID,
		OrderNumber:              o.OrderNumber,
		ServiceType:              o.ServiceType.String(),
		TotalAmount:              o.TotalAmount,
		DeliveryStatus:           o.DeliveryStatus.String(),
		DeliveryAddress:          o.DeliveryAddress,
		DeliveryInstructions:     o.DeliveryInstructions,
		EstimatedDeliveryMinutes: o.EstimatedDeliveryMinutes,
		DeliveryETA:              o.DeliveryETA,
		PanchayatID:              o.PanchayatID,
		WardNumber:               o.WardNumber,
		CreatedAt:                o.CreatedAt,
		Customer:                 customer,
		CutoffAt:                 o.CutoffAt,
		SecondsRemaining:         o.SecondsRemaining,
	}
}

func FromPendingSnapshot(s entities.PendingOrdersSnapshot) PendingOrders {
	orders := make([]PendingOrder, 0, len(s.Orders))
	for _, o := range s.Orders {
		orders = append(orders, FromPendingOrder(o))
	}
	return PendingOrders{
		ShowAlert: s.ShowAlert,
		Orders:    orders,
	}
}

func FromUnacceptedOrder(o entities.UnacceptedAdminAlertOrder) UnacceptedOrder {
	return UnacceptedOrder{
		ID:                  o.Order.ID,
		OrderNumber:         o.Order.OrderNumber,
		ServiceType:         o.Order.ServiceType.String(),
		TotalAmount:         o.Order.TotalAmount,
		DeliveryAddress:     o.Order.DeliveryAddress,
		PanchayatID:         o.Order.PanchayatID,
		PanchayatName:       o.PanchayatName,
		WardNumber:          o.Order.WardNumber,
		ReadySince:          o.ReadySince,
		WaitingSeconds:      int(o.Waiting.Seconds()),
		WaitingLabel:        o.WaitingLabel(),
		AvailableStaffCount: o.AvailableStaffCount,
	}
}

func FromUnacceptedSnapshot(s entities.UnacceptedOrdersSnapshot) UnacceptedOrders {
	orders := make([]UnacceptedOrder, 0, len(s.Orders))
	for _, o := range s.Orders {
		orders = append(orders, FromUnacceptedOrder(o))
	}
	return UnacceptedOrders{
		ShowAlert: s.ShowAlert,
		Orders:    orders,
	}
}

func FromSlotWindow(w entities.SlotWindow) SlotWindow {
	var remaining *TimeRemaining
	if w.State.TimeUntilCutoff != nil {
		remaining = &TimeRemaining{
			Hours:   w.State.TimeUntilCutoff.Hours,
			Minutes: w.State.TimeUntilCutoff.Minutes,
		}
	}

	return SlotWindow{
		ID:                w.Slot.ID,
		Name:              w.Slot.Name,
		SlotType:          w.Slot.SlotType,
		StartTime:         clock(w.Slot.StartMinute),
		EndTime:           clock(w.Slot.EndMinute),
		CutoffHoursBefore: w.Slot.CutoffHoursBefore,
		IsOrderingOpen:    w.State.IsOpen,
		TimeUntilCutoff:   remaining,
		StatusLabel:       w.State.Status.String(),
	}
}

// clock renders minutes since midnight as HH:MM.
func clock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
