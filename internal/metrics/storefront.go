package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cartMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_cart_mutations_total",
			Help: "Cart actions applied, by action kind.",
		},
		[]string{"action"},
	)

	cartPersistFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_cart_persist_failures_total",
			Help: "Cart state reads or writes that failed against the key-value store.",
		},
		[]string{"op"},
	)

	catalogQueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "storefront_catalog_query_duration_seconds",
			Help:    "Time spent filtering, sorting and paginating the catalog.",
			Buckets: []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01},
		},
	)

	paymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_payments_total",
			Help: "Payment attempts by gateway, payment type and outcome.",
		},
		[]string{"gateway", "type", "outcome"},
	)

	ordersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_orders_total",
			Help: "Orders placed, by payment type.",
		},
		[]string{"payment_type"},
	)
)

func CartMutation(action string) {
	cartMutationsTotal.WithLabelValues(action).Inc()
}

// CartPersistFailure counts a failed "load" or "save" of cart state.
func CartPersistFailure(op string) {
	cartPersistFailuresTotal.WithLabelValues(op).Inc()
}

func ObserveCatalogQuery(d time.Duration) {
	catalogQueryDuration.Observe(d.Seconds())
}

func Payment(gateway, paymentType, outcome string) {
	paymentsTotal.WithLabelValues(gateway, paymentType, outcome).Inc()
}

func OrderPlaced(paymentType string) {
	ordersTotal.WithLabelValues(paymentType).Inc()
}
