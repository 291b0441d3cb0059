// Package metrics содержит prometheus-метрики сервиса
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
// Все методы безопасны для nil-получателя: при выключенных метриках передаётся nil
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	dbQueryDuration     *prometheus.HistogramVec
	bookingsTotal       prometheus.Counter
	invoicesTotal       prometheus.Counter
	revenueTotal        prometheus.Counter
	resetsTotal         prometheus.Counter
}

// New регистрирует метрики в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в указанном регистре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		dbQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		bookingsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name:        "parking_bookings_total",
			Help:        "Total number of created bookings",
			ConstLabels: constLabels,
		}),
		invoicesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name:        "parking_invoices_total",
			Help:        "Total number of generated invoices",
			ConstLabels: constLabels,
		}),
		revenueTotal: factory.NewCounter(prometheus.CounterOpts{
			Name:        "parking_revenue_total",
			Help:        "Sum of invoiced amounts",
			ConstLabels: constLabels,
		}),
		resetsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name:        "parking_slot_resets_total",
			Help:        "Total number of manual slot resets",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *Metrics) BookingCreated() {
	if m == nil {
		return
	}
	m.bookingsTotal.Inc()
}

func (m *Metrics) InvoiceIssued(amount float64) {
	if m == nil {
		return
	}
	m.invoicesTotal.Inc()
	m.revenueTotal.Add(amount)
}

func (m *Metrics) SlotReset() {
	if m == nil {
		return
	}
	m.resetsTotal.Inc()
}
