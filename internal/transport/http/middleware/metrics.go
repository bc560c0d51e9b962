package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpReqTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Count of HTTP requests"},
		[]string{"path", "method", "status"},
	)
	httpLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latency of HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "method"},
	)
	authEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "auth_events_total", Help: "Authentication outcomes by action"},
		[]string{"action", "outcome"},
	)
)

func init() { prometheus.MustRegister(httpReqTotal, httpLatency, authEvents) }

// ObserveAuth action: signup / login / guard
func ObserveAuth(action, outcome string) {
	authEvents.WithLabelValues(action, outcome).Inc()
}

func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched" // 避免任意 URL 撑爆 label 基数
		}
		httpReqTotal.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		httpLatency.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
