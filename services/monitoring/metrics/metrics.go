package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "portalfi",
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "Inbound HTTP requests by route and status.",
}, []string{"method", "route", "status"})

var httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "portalfi",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "Inbound HTTP request latency.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route"})

var upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "portalfi",
	Subsystem: "upstream",
	Name:      "requests_total",
	Help:      "Calls made to upstream providers by outcome status.",
}, []string{"provider", "method", "status"})

var upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "portalfi",
	Subsystem: "upstream",
	Name:      "request_duration_seconds",
	Help:      "Upstream call latency.",
	Buckets:   prometheus.DefBuckets,
}, []string{"provider", "method"})

var notificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "portalfi",
	Name:      "notifications_total",
	Help:      "Email and SMS notifications by channel and result.",
}, []string{"channel", "result"})

// ObserveUpstream records one upstream round trip. status 0 means no response was received.
func ObserveUpstream(provider, method string, status int, elapsed time.Duration) {
	if len(provider) == 0 {
		return
	}
	label := strconv.Itoa(status)
	if status == 0 {
		label = "transport_error"
	}
	upstreamRequests.With(prometheus.Labels{"provider": provider, "method": method, "status": label}).Inc()
	upstreamDuration.With(prometheus.Labels{"provider": provider, "method": method}).Observe(elapsed.Seconds())
}

func ObserveNotification(channel string, err error) {
	result := "sent"
	if err != nil {
		result = "failed"
	}
	notificationsSent.With(prometheus.Labels{"channel": channel, "result": result}).Inc()
}

// Middleware records request counts and latency labelled by the matched route pattern.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.With(prometheus.Labels{
			"method": c.Request.Method,
			"route":  route,
			"status": strconv.Itoa(c.Writer.Status()),
		}).Inc()
		httpDuration.With(prometheus.Labels{"method": c.Request.Method, "route": route}).Observe(time.Since(start).Seconds())
	}
}

func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
