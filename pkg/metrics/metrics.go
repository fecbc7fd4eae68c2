package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Результаты построения сводки слотов
const (
	SummaryResultOK          = "ok"
	SummaryResultClosed      = "closed"
	SummaryResultOutOfWindow = "out_of_window"
	SummaryResultError       = "error"
)

// Результаты создания бронирования
const (
	ReservationResultCreated     = "created"
	ReservationResultRejected    = "rejected"
	ReservationResultUnavailable = "unavailable"
	ReservationResultError       = "error"
)

// Metrics набор prometheus-метрик сервиса
// Все методы безопасны для вызова на nil (метрики выключены в конфигурации)
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBQueryErrorsTotal *prometheus.CounterVec
	DBOpenConnections  prometheus.Gauge
	DBInUseConnections prometheus.Gauge
	DBIdleConnections  prometheus.Gauge

	SlotSummaryTotal        *prometheus.CounterVec
	ReservationsTotal       *prometheus.CounterVec
	StaleSpanFallbacksTotal prometheus.Counter
}

// New создает метрики и регистрирует их в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency.",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBQueryErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Database queries that returned an error.",
			ConstLabels: labels,
		}, []string{"operation"}),
		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Open connections in the pool.",
			ConstLabels: labels,
		}),
		DBInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Connections currently in use.",
			ConstLabels: labels,
		}),
		DBIdleConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Idle connections in the pool.",
			ConstLabels: labels,
		}),
		SlotSummaryTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "slot_summary_requests_total",
			Help:        "Slot summary requests by result.",
			ConstLabels: labels,
		}, []string{"result"}),
		ReservationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservation_attempts_total",
			Help:        "Reservation creation attempts by result.",
			ConstLabels: labels,
		}, []string{"result"}),
		StaleSpanFallbacksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "stale_span_fallbacks_total",
			Help:        "Reservations whose stored span no longer matches the generated slots.",
			ConstLabels: labels,
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrorsTotal,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.SlotSummaryTotal,
		m.ReservationsTotal,
		m.StaleSpanFallbacksTotal,
	)

	return m
}

// ObserveHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery учитывает выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		m.DBQueryErrorsTotal.WithLabelValues(operation).Inc()
	}
}

// SetDBPoolStats обновляет показатели пула соединений
func (m *Metrics) SetDBPoolStats(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.DBOpenConnections.Set(float64(open))
	m.DBInUseConnections.Set(float64(inUse))
	m.DBIdleConnections.Set(float64(idle))
}

// IncSlotSummary учитывает результат построения сводки слотов
func (m *Metrics) IncSlotSummary(result string) {
	if m == nil {
		return
	}
	m.SlotSummaryTotal.WithLabelValues(result).Inc()
}

// IncReservation учитывает результат попытки бронирования
func (m *Metrics) IncReservation(result string) {
	if m == nil {
		return
	}
	m.ReservationsTotal.WithLabelValues(result).Inc()
}

// AddStaleSpanFallbacks учитывает бронирования, посчитанные по одному слоту
func (m *Metrics) AddStaleSpanFallbacks(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.StaleSpanFallbacksTotal.Add(float64(n))
}
