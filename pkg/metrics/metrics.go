// Package metrics exposes order and HTTP metrics for Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Rejection reasons recorded for failed order writes.
const (
	ReasonEmptySelection = "empty_selection"
	ReasonOutOfRange     = "out_of_range"
	ReasonDuplicateSeat  = "duplicate_seat"
	ReasonNotFound       = "not_found"
	ReasonInternal       = "internal"
)

type Metrics struct {
	registry *prometheus.Registry

	ordersCreated   prometheus.Counter
	ticketsSold     prometheus.Counter
	ticketsReleased prometheus.Counter
	orderRejections *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New registers every collector on reg. Pass a fresh registry in tests.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		ordersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "cinema_orders_created_total",
			Help: "Orders committed with all their tickets",
		}),
		ticketsSold: factory.NewCounter(prometheus.CounterOpts{
			Name: "cinema_tickets_sold_total",
			Help: "Tickets committed to the ledger",
		}),
		ticketsReleased: factory.NewCounter(prometheus.CounterOpts{
			Name: "cinema_tickets_released_total",
			Help: "Tickets removed from the ledger by customers",
		}),
		orderRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cinema_order_rejections_total",
			Help: "Order and ticket writes rolled back, by reason",
		}, []string{"reason"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cinema_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// NewDefault uses a registry that also carries the Go and process collectors.
func NewDefault() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return New(reg)
}

func (m *Metrics) OrderCreated(tickets int) {
	m.ordersCreated.Inc()
	m.ticketsSold.Add(float64(tickets))
}

func (m *Metrics) TicketAdded() {
	m.ticketsSold.Inc()
}

func (m *Metrics) TicketReleased(n int) {
	m.ticketsReleased.Add(float64(n))
}

func (m *Metrics) OrderRejected(reason string) {
	m.orderRejections.WithLabelValues(reason).Inc()
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
