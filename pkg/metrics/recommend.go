package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of recommendation queries, by query shape
	RecommendLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "recommend_query_latency_seconds",
		Help:    "Latency of recommendation queries",
		Buckets: prometheus.DefBuckets,
	}, []string{"query_type"})

	// Total recommendation queries served, by query shape
	RecommendRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recommend_query_requests_total",
		Help: "Total number of recommendation queries",
	}, []string{"query_type"})

	// How often queries fell back to pure content scoring (zero coverage)
	ColdStartFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_cold_start_fallbacks_total",
		Help: "Queries answered without any collaborative signal",
	})

	// Feedback events accepted, by event type
	FeedbackEvents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recommend_feedback_events_total",
		Help: "Interaction feedback events recorded",
	}, []string{"event_type"})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
		ColdStartFallbacks,
		FeedbackEvents,
	)
}
