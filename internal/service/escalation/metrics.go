package escalation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UnacceptedOrdersGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dispatch_unaccepted_orders",
			Help: "Ready orders escalated to administrators and still unassigned",
		},
	)

	EscalationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_escalations_total",
			Help: "Escalation monitor transitions by outcome",
		},
		[]string{"outcome"},
	)
)
