package tts

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains the Prometheus metrics exported by the service.
type Metrics struct {
	Requests          prometheus.Counter
	Failures          prometheus.Counter
	GenerationSeconds prometheus.Histogram
	AudioSeconds      prometheus.Counter
	RealTimeFactor    prometheus.Histogram

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers all service metrics on the default
// registry. Call at most once per process.
func NewMetrics() *Metrics {
	return &Metrics{
		Requests: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tts_generate_requests_total",
			Help: "Total number of synthesis requests",
		}),
		Failures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tts_generate_failures_total",
			Help: "Total number of failed synthesis requests",
		}),
		GenerationSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "tts_generation_duration_seconds",
			Help:    "Wall-clock time spent in the synthesis backend",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		}),
		AudioSeconds: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tts_audio_seconds_total",
			Help: "Total seconds of audio produced",
		}),
		RealTimeFactor: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "tts_real_time_factor",
			Help:    "Generation time divided by audio duration",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
		HTTPRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tts_http_requests_total",
			Help: "Total HTTP requests by endpoint and status code",
		}, []string{"endpoint", "code"}),
		HTTPDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tts_http_request_duration_seconds",
			Help:    "HTTP request duration by endpoint",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}
