package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "fulfillment",
	Subsystem: "orders",
	Name:      "status_transitions_total",
	Help:      "Attempted order status transitions, by target status and result.",
}, []string{"to", "result"})
