package pending

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeRegistered = "registered"
	outcomeDuplicate  = "duplicate"
	outcomeCancelled  = "cancelled"
	outcomeExpired    = "expired"
	outcomeRemoved    = "removed"
)

var (
	PendingOrdersGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dispatch_pending_orders",
			Help: "Orders currently awaiting acceptance by the delivery staff member",
		},
	)

	PendingOrdersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_pending_orders_total",
			Help: "Pending order registry transitions by outcome",
		},
		[]string{"outcome"},
	)

	CustomerLookupFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_customer_lookup_failures_total",
			Help: "Registrations that proceeded without customer contact details",
		},
	)

	CustomerLookupRetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_customer_lookup_retries_total",
			Help: "Customer contact lookups repeated after a transient error",
		},
	)
)
