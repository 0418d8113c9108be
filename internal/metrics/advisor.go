package metrics

import "github.com/prometheus/client_golang/prometheus"

// Suggestion pipeline Prometheus metrics.
var (
	SuggestionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "advisor",
			Name:      "suggestions_total",
			Help:      "Suggestions served, by the tier that produced them",
		},
		[]string{"source"}, // "catalog" / "model" / "static"
	)

	ModelRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "advisor",
			Name:      "model_requests_total",
			Help:      "Total number of generative model requests",
		},
		[]string{"provider", "model", "status"},
	)

	ModelRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "advisor",
			Name:      "model_request_duration_seconds",
			Help:      "Generative model request duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"provider", "model"},
	)

	TranscriptionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "advisor",
			Name:      "transcriptions_total",
			Help:      "Transcription requests, by outcome",
		},
		[]string{"status"},
	)
)

var advisorMetricsRegistered bool

// RegisterAdvisorMetrics registers the pipeline metrics. Must be called once from main.
func RegisterAdvisorMetrics() {
	if advisorMetricsRegistered {
		return
	}
	prometheus.MustRegister(SuggestionsTotal)
	prometheus.MustRegister(ModelRequestsTotal)
	prometheus.MustRegister(ModelRequestDuration)
	prometheus.MustRegister(TranscriptionsTotal)
	advisorMetricsRegistered = true
}
