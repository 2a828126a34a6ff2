package entities

import (
	"fmt"
	"time"
)

const UnknownPanchayatName = "Unknown"

// UnacceptedAdminAlertOrder is a ready order nobody accepted within the escalation threshold.
type UnacceptedAdminAlertOrder struct {
	Order               Order
	ReadySince          time.Time
	PanchayatName       string
	AvailableStaffCount int
	Waiting             time.Duration
}

// WaitingLabel renders Waiting as "N min" below an hour and "Hh Mm" above.
func (u UnacceptedAdminAlertOrder) WaitingLabel() string {
	return FormatWaiting(u.Waiting)
}

func FormatWaiting(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d / time.Minute)
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

type EscalationDetails struct {
	PanchayatName       string
	AvailableStaffCount int
}

type UnacceptedOrdersSnapshot struct {
	ShowAlert bool
	Orders    []UnacceptedAdminAlertOrder
}
