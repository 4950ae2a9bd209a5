package config

import (
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	metricsOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "massagepro",
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by method and status code.",
		},
		[]string{"method", "status"},
	)

	bookingCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "massagepro",
			Name:      "booking_created_total",
			Help:      "Count of bookings created by status.",
		},
		[]string{"status"},
	)

	reminderSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "massagepro",
			Name:      "reminder_sent_total",
			Help:      "Count of booking reminders by delivery result.",
		},
		[]string{"result"},
	)
)

// RegisterMetrics registers metrics (idempotent).
func RegisterMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(httpRequests, bookingCreated, reminderSent)
	})
}

// MetricsMiddleware counts every request by method and status.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		httpRequests.WithLabelValues(c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

func IncBookingCreated(status string) {
	bookingCreated.WithLabelValues(status).Inc()
}

func IncReminderSent(result string) {
	reminderSent.WithLabelValues(result).Inc()
}
