package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5, 15},
		},
		[]string{"method", "endpoint"},
	)

	WordAttempts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "word_attempts_total",
			Help: "Word attempts folded into learner motor profiles",
		},
	)

	UGCWordsSaved = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ugc_words_saved_total",
			Help: "User-generated words saved or replaced",
		},
	)

	SignVideosProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sign_videos_processed_total",
			Help: "Sign videos run through the ffmpeg pipeline",
		},
		[]string{"result"},
	)
)

var registerOnce sync.Once

// Init 注册到默认 Registry，重复调用无副作用
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			RequestCounter,
			RequestDuration,
			WordAttempts,
			UGCWordsSaved,
			SignVideosProcessed,
		)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		RequestCounter.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(time.Since(start).Seconds())
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
