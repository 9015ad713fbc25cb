// Package observability provides metrics and tracing for the application.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kalyanam_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// RecommendationLatency records latency of the recommendation pipeline.
	RecommendationLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "kalyanam_recommendation_latency_seconds",
		Help:    "Latency of building a scored recommendation list",
		Buckets: prometheus.DefBuckets,
	})

	// ProfileViewsRecorded counts profile-view rows written.
	ProfileViewsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kalyanam_profile_views_recorded_total",
		Help: "Total number of profile views recorded",
	})

	// ProfileViewsDenied counts profile views denied by the membership gate, by reason.
	ProfileViewsDenied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kalyanam_profile_views_denied_total",
		Help: "Total number of profile views denied by the membership gate",
	}, []string{"reason"})

	// InterestsCreated counts interests sent.
	InterestsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kalyanam_interests_created_total",
		Help: "Total number of interests sent",
	})

	// InterestResponses counts interest responses by outcome.
	InterestResponses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kalyanam_interest_responses_total",
		Help: "Total number of interest responses by outcome",
	}, []string{"status"})

	// SearchQueries counts search requests by surface (authenticated or public).
	SearchQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kalyanam_search_queries_total",
		Help: "Total number of profile search queries by surface",
	}, []string{"surface"})
)

// ObserveRecommendation records the latency of one recommendation build.
func ObserveRecommendation(start time.Time) {
	RecommendationLatency.Observe(time.Since(start).Seconds())
}
