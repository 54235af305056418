package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса.
// Все методы безопасны для nil-получателя - это позволяет отключать метрики в конфиге
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec

	PriceQuotesTotal         *prometheus.CounterVec
	ReservationsCreatedTotal *prometheus.CounterVec
	ClockEventsTotal         *prometheus.CounterVec
	JobRunsTotal             *prometheus.CounterVec
}

// New создает и регистрирует метрики в указанном registerer
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of open database connections",
			ConstLabels: constLabels,
		}, []string{}),
		DBInUseConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of database connections in use",
			ConstLabels: constLabels,
		}, []string{}),
		DBIdleConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}, []string{}),
		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{}),
		PriceQuotesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "price_quotes_total",
			Help:        "Number of computed price quotes by pricing source",
			ConstLabels: constLabels,
		}, []string{"source", "type"}),
		ReservationsCreatedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_created_total",
			Help:        "Number of created reservations",
			ConstLabels: constLabels,
		}, []string{"type"}),
		ClockEventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "clock_events_total",
			Help:        "Number of clock-in/clock-out events",
			ConstLabels: constLabels,
		}, []string{"event"}),
		JobRunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "job_runs_total",
			Help:        "Number of scheduled job runs by result",
			ConstLabels: constLabels,
		}, []string{"job", "result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.PriceQuotesTotal,
		m.ReservationsCreatedTotal,
		m.ClockEventsTotal,
		m.JobRunsTotal,
	)

	return m
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, seconds float64) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(operation).Observe(seconds)
}

// SetDBPoolStats обновляет метрики пула соединений
func (m *Metrics) SetDBPoolStats(open, inUse, idle int, waitCount int64) {
	if m == nil {
		return
	}
	m.DBOpenConnections.WithLabelValues().Set(float64(open))
	m.DBInUseConnections.WithLabelValues().Set(float64(inUse))
	m.DBIdleConnections.WithLabelValues().Set(float64(idle))
	m.DBWaitCount.WithLabelValues().Set(float64(waitCount))
}

// IncPriceQuote увеличивает счетчик расчетов цены
func (m *Metrics) IncPriceQuote(source, reservationType string) {
	if m == nil {
		return
	}
	m.PriceQuotesTotal.WithLabelValues(source, reservationType).Inc()
}

// IncReservationCreated увеличивает счетчик созданных бронирований
func (m *Metrics) IncReservationCreated(reservationType string) {
	if m == nil {
		return
	}
	m.ReservationsCreatedTotal.WithLabelValues(reservationType).Inc()
}

// IncClockEvent увеличивает счетчик отметок прихода/ухода
func (m *Metrics) IncClockEvent(event string) {
	if m == nil {
		return
	}
	m.ClockEventsTotal.WithLabelValues(event).Inc()
}

// IncJobRun увеличивает счетчик запусков фоновой задачи
func (m *Metrics) IncJobRun(job, result string) {
	if m == nil {
		return
	}
	m.JobRunsTotal.WithLabelValues(job, result).Inc()
}
