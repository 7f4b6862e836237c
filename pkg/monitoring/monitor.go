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

	BackendRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backend_requests_total",
			Help: "Total number of requests sent to the exam backend",
		},
		[]string{"op", "status"},
	)

	BackendRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backend_request_duration_seconds",
			Help:    "Duration of requests sent to the exam backend",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"op"},
	)

	ExamSessionsStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "exam_sessions_started_total",
		Help: "Exam sessions started",
	})

	ExamSessionsSubmitted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "exam_sessions_submitted_total",
		Help: "Exam sessions submitted",
	})

	ExamScore = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "exam_score",
		Help:    "Locally computed exam scores",
		Buckets: prometheus.LinearBuckets(0, 10, 11),
	})
)

var once sync.Once

func Init() {
	once.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(BackendRequestCounter)
		prometheus.MustRegister(BackendRequestDuration)
		prometheus.MustRegister(ExamSessionsStarted)
		prometheus.MustRegister(ExamSessionsSubmitted)
		prometheus.MustRegister(ExamScore)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

// ObserveBackend 记录一次后端调用，status 为 0 表示网络错误
func ObserveBackend(op string, status int, elapsed time.Duration) {
	label := "transport_error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	BackendRequestCounter.WithLabelValues(op, label).Inc()
	BackendRequestDuration.WithLabelValues(op).Observe(elapsed.Seconds())
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
