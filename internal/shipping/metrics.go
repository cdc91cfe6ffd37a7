package shipping

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	quotesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "shipping",
		Name:      "quotes_total",
		Help:      "Shipping quotes produced, by tier and price source (carrier, fallback, free).",
	}, []string{"tier", "source"})

	carrierErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "shipping",
		Name:      "carrier_errors_total",
		Help:      "Failed carrier rate lookups absorbed by fallback pricing.",
	})
)
