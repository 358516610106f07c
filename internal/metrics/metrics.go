// Package metrics exposes Prometheus collectors for the recommender.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommendation outcomes
const (
	OutcomeMatched = "matched"
	OutcomeNoMatch = "no_match"
)

var (
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation queries by outcome",
		},
		[]string{"outcome"},
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Duration of recommendation queries in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	CatalogRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_records",
			Help: "Number of records in the loaded catalog",
		},
	)

	CatalogVocabulary = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_vocabulary_terms",
			Help: "Number of terms in the TF-IDF vocabulary",
		},
	)

	CatalogBuildDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_build_duration_seconds",
			Help: "Time spent normalizing and indexing the catalog",
		},
	)

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)
)

// RecordRecommendation tracks one recommendation query.
func RecordRecommendation(matched bool, duration time.Duration) {
	outcome := OutcomeNoMatch
	if matched {
		outcome = OutcomeMatched
	}
	RecommendRequests.WithLabelValues(outcome).Inc()
	RecommendDuration.Observe(duration.Seconds())
}

// RecordCatalog tracks the size of a freshly built catalog.
func RecordCatalog(records, vocabulary int, duration time.Duration) {
	CatalogRecords.Set(float64(records))
	CatalogVocabulary.Set(float64(vocabulary))
	CatalogBuildDuration.Set(duration.Seconds())
}

// RecordAPIRequest tracks one API request.
func RecordAPIRequest(method, route string, statusCode int) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
}
