package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "checkout_consumer",
		Name:      "orders_created_total",
		Help:      "Checkout events successfully turned into orders.",
	})

	ordersFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "checkout_consumer",
		Name:      "orders_failed_total",
		Help:      "Checkout events that could not be processed.",
	})

	ordersDLQ = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "checkout_consumer",
		Name:      "orders_dlq_total",
		Help:      "Checkout events written to the DLQ topic.",
	})

	commitErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "checkout_consumer",
		Name:      "commit_errors_total",
		Help:      "Kafka offset commit errors.",
	})
)
