package metrics

import (
	"strconv"
	"time"

	"stayhub/internal/domain/booking"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "stayhub"

// Metrics holds Prometheus collectors for the booking engine.
type Metrics struct {
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
	BookingsCreated    *prometheus.CounterVec
	BookingConflicts   *prometheus.CounterVec
	BookingTransitions *prometheus.CounterVec
	SyncRuns           *prometheus.CounterVec
	SyncDuration       *prometheus.HistogramVec
	ImportedEvents     prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		BookingsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "booking",
				Name:      "created_total",
				Help:      "Bookings created",
			},
			[]string{"unit_id"},
		),
		BookingConflicts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "booking",
				Name:      "conflicts_total",
				Help:      "Booking attempts rejected for unavailable dates",
			},
			[]string{"reason"},
		),
		BookingTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "booking",
				Name:      "transitions_total",
				Help:      "Booking status transitions",
			},
			[]string{"from", "to"},
		),
		SyncRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "calendar_sync",
				Name:      "runs_total",
				Help:      "Calendar sync runs by direction and outcome",
			},
			[]string{"direction", "outcome"},
		),
		SyncDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "calendar_sync",
				Name:      "duration_seconds",
				Help:      "Calendar sync duration in seconds",
				Buckets:   []float64{0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"direction"},
		),
		ImportedEvents: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "calendar_sync",
				Name:      "imported_events_total",
				Help:      "External events stored by imports",
			},
		),
	}
}

func (m *Metrics) BookingCreated(unitID string) {
	m.BookingsCreated.WithLabelValues(unitID).Inc()
}

func (m *Metrics) BookingConflict(reason string) {
	m.BookingConflicts.WithLabelValues(reason).Inc()
}

func (m *Metrics) BookingTransition(from, to booking.Status) {
	m.BookingTransitions.WithLabelValues(from.String(), to.String()).Inc()
}

func (m *Metrics) SyncFinished(direction, outcome string, elapsed time.Duration) {
	m.SyncRuns.WithLabelValues(direction, outcome).Inc()
	m.SyncDuration.WithLabelValues(direction).Observe(elapsed.Seconds())
}

func (m *Metrics) SyncImported(events int) {
	m.ImportedEvents.Add(float64(events))
}

// Middleware records request count and latency per matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
