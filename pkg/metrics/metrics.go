package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// БД
	DBQueryDuration     *prometheus.HistogramVec
	DBOpenConnections   *prometheus.GaugeVec
	DBInUseConnections  *prometheus.GaugeVec
	DBIdleConnections   *prometheus.GaugeVec
	DBWaitCount         *prometheus.GaugeVec
	DBWaitDurationTotal *prometheus.GaugeVec

	// Бизнес-метрики
	BookingTransitionsTotal *prometheus.CounterVec
	BookingsCreatedTotal    *prometheus.CounterVec
	ReminderMarksTotal      *prometheus.CounterVec
	RemindersDue            *prometheus.GaugeVec
}

// New регистрирует метрики в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в указанном реестре (в тестах - prometheus.NewRegistry())
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBOpenConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBInUseConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBIdleConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBWaitCount: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBWaitDurationTotal: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_duration_seconds_total",
			Help:        "Total time blocked waiting for a new connection",
			ConstLabels: constLabels,
		}, []string{"db"}),

		BookingTransitionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_transitions_total",
			Help:        "Booking status transitions by action and result",
			ConstLabels: constLabels,
		}, []string{"action", "result"}),

		BookingsCreatedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Booking creation attempts by result",
			ConstLabels: constLabels,
		}, []string{"result"}),

		ReminderMarksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "reminder_marks_total",
			Help:        "Reminder sent-flag updates by kind and result",
			ConstLabels: constLabels,
		}, []string{"kind", "result"}),

		RemindersDue: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "reminders_due",
			Help:        "Bookings currently waiting for a reminder, by kind",
			ConstLabels: constLabels,
		}, []string{"kind"}),
	}
}

// ObserveTransition учитывает попытку перехода статуса (nil-safe)
func (m *Metrics) ObserveTransition(action, result string) {
	if m == nil {
		return
	}
	m.BookingTransitionsTotal.WithLabelValues(action, result).Inc()
}

// ObserveBookingCreated учитывает попытку создания бронирования (nil-safe)
func (m *Metrics) ObserveBookingCreated(result string) {
	if m == nil {
		return
	}
	m.BookingsCreatedTotal.WithLabelValues(result).Inc()
}

// ObserveReminderMark учитывает отметку об отправке напоминания (nil-safe)
func (m *Metrics) ObserveReminderMark(kind, result string) {
	if m == nil {
		return
	}
	m.ReminderMarksTotal.WithLabelValues(kind, result).Inc()
}

// SetRemindersDue выставляет размер очереди напоминаний (nil-safe)
func (m *Metrics) SetRemindersDue(kind string, count int) {
	if m == nil {
		return
	}
	m.RemindersDue.WithLabelValues(kind).Set(float64(count))
}

// ObserveHTTPRequest учитывает HTTP запрос (nil-safe)
// path - шаблон маршрута, а не фактический URL, чтобы не раздувать кардинальность
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
