package push

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ConnectedClients = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dispatch_push_connected_clients",
			Help: "Websocket sessions currently connected per audience",
		},
		[]string{"audience"},
	)

	EventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_push_events_total",
			Help: "Events broadcast per audience and type",
		},
		[]string{"audience", "type"},
	)
)
