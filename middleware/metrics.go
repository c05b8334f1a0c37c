package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// requestMetrics accumulates in-process request counters for /metrics.
type requestMetrics struct {
	mu             sync.Mutex
	totalRequests  int64
	failedRequests int64
	totalLatencyMs float64
	inFlight       int64
}

var metrics requestMetrics

func (m *requestMetrics) record(latencyMs float64, failed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalRequests++
	if failed {
		m.failedRequests++
	}
	m.totalLatencyMs += latencyMs
}

// MetricsSnapshot is the payload served by /metrics.
type MetricsSnapshot struct {
	QueueLength   int64   `json:"queue_length"`
	TotalRequests int64   `json:"total_requests"`
	ErrorRate     float64 `json:"error_rate"`
	AvgLatencyMs  float64 `json:"avg_latency_ms"`
}

func Snapshot() MetricsSnapshot {
	metrics.mu.Lock()
	defer metrics.mu.Unlock()

	var errorRate, avgLatency float64
	if metrics.totalRequests > 0 {
		errorRate = float64(metrics.failedRequests) / float64(metrics.totalRequests) * 100
		avgLatency = metrics.totalLatencyMs / float64(metrics.totalRequests)
	}
	return MetricsSnapshot{
		QueueLength:   metrics.inFlight,
		TotalRequests: metrics.totalRequests,
		ErrorRate:     round2(errorRate),
		AvgLatencyMs:  round2(avgLatency),
	}
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}

// MetricsMiddleware times every request and counts 5xx/4xx responses as failures.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		metrics.mu.Lock()
		metrics.inFlight++
		metrics.mu.Unlock()

		c.Next()

		metrics.mu.Lock()
		metrics.inFlight--
		metrics.mu.Unlock()

		latency := float64(time.Since(start).Microseconds()) / 1000
		metrics.record(latency, c.Writer.Status() >= 400)
	}
}
