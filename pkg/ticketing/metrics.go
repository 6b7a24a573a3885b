package ticketing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// LifecycleTotal is the number of ticket lifecycle events.
var LifecycleTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "artemis_ticket_lifecycle_total",
		Help: "Total number of ticket lifecycle events",
	},
	[]string{"event"},
)
