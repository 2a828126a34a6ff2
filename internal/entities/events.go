package entities

import "time"

// OrderEvent is one of OrderReady or OrderUpdated.
type OrderEvent interface {
	orderEvent()
}

// OrderReady carries an orders row whose cook status is ready after the update.
type OrderReady struct {
	Order      Order
	ReceivedAt time.Time
}

// OrderUpdated carries any updated orders row.
type OrderUpdated struct {
	Order      Order
	ReceivedAt time.Time
}

func (OrderReady) orderEvent()   {}
func (OrderUpdated) orderEvent() {}
