// Package metrics registers the process's prometheus/client_golang
// collectors and serves them over HTTP, the way
// _examples/Aidin1998-finalex/services/marketfeeds/market-maker-bot/monitoring/metrics.go
// and cmd/pincex/admin_api_main.go do: package-level collectors
// registered once at startup, exposed at /metrics via promhttp.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// OrdersRested counts orders that came to rest on the book
	// (spec §4.3's OrderAdded event), labeled by instrument. A SUBMIT
	// that fully executes on arrival never rests and is not counted
	// here; it is reflected in Executions instead.
	OrdersRested = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "matchbook_orders_rested_total",
		Help: "Total orders that came to rest on the book, by instrument.",
	}, []string{"instrument"})

	// OrdersCancelled counts accepted and rejected CANCEL commands.
	OrdersCancelled = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "matchbook_orders_cancelled_total",
		Help: "Total CANCEL commands processed, by outcome.",
	}, []string{"accepted"})

	// Executions counts resting/active order pairings.
	Executions = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "matchbook_executions_total",
		Help: "Total execution events emitted.",
	})

	// OutboxDepth tracks how many events are queued for delivery but
	// not yet ACKED.
	OutboxDepth = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "matchbook_outbox_pending",
		Help: "Events in the outbox not yet acknowledged as delivered.",
	})

	// InstrumentCount tracks the number of distinct instruments the
	// CHM registry currently holds.
	InstrumentCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "matchbook_instruments",
		Help: "Distinct instruments currently registered.",
	})
)

// Register attaches every collector to the default registry. Call
// once at process startup.
func Register() {
	prometheus.MustRegister(OrdersRested)
	prometheus.MustRegister(OrdersCancelled)
	prometheus.MustRegister(Executions)
	prometheus.MustRegister(OutboxDepth)
	prometheus.MustRegister(InstrumentCount)
}

// Handler returns the HTTP handler to mount at /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
