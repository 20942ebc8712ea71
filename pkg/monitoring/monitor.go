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
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	TutorialViews = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tutorial_views_total",
			Help: "Tutorial detail pages served",
		},
		[]string{"tutorial"},
	)

	QuizGradings = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_gradings_total",
			Help: "Transitions of a quiz into graded mode",
		},
		[]string{"tutorial"},
	)

	ContentRegistered = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "content_registered",
			Help: "Records held by the content registries",
		},
		[]string{"kind"},
	)
)

var initOnce sync.Once

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(TutorialViews)
		prometheus.MustRegister(QuizGradings)
		prometheus.MustRegister(ContentRegistered)
	})
}

// SetContentCounts 内容加载完成后调用
func SetContentCounts(tutorials, problems int) {
	ContentRegistered.WithLabelValues("tutorial").Set(float64(tutorials))
	ContentRegistered.WithLabelValues("practice_problem").Set(float64(problems))
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		RequestCounter.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
