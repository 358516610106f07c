package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knowledge-engine/recommender/internal/metrics"
)

func TestRecordRecommendation(t *testing.T) {
	matched := testutil.ToFloat64(metrics.RecommendRequests.WithLabelValues(metrics.OutcomeMatched))
	noMatch := testutil.ToFloat64(metrics.RecommendRequests.WithLabelValues(metrics.OutcomeNoMatch))

	metrics.RecordRecommendation(true, time.Millisecond)
	metrics.RecordRecommendation(false, time.Millisecond)
	metrics.RecordRecommendation(false, time.Millisecond)

	assert.Equal(t, matched+1, testutil.ToFloat64(metrics.RecommendRequests.WithLabelValues(metrics.OutcomeMatched)))
	assert.Equal(t, noMatch+2, testutil.ToFloat64(metrics.RecommendRequests.WithLabelValues(metrics.OutcomeNoMatch)))
}

func TestRecordCatalog(t *testing.T) {
	metrics.RecordCatalog(1000, 5432, 2*time.Second)

	assert.Equal(t, 1000.0, testutil.ToFloat64(metrics.CatalogRecords))
	assert.Equal(t, 5432.0, testutil.ToFloat64(metrics.CatalogVocabulary))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.CatalogBuildDuration))
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", "/api/v1/genres", "200"))
	metrics.RecordAPIRequest("GET", "/api/v1/genres", 200)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", "/api/v1/genres", "200")))
}

func TestAPIRequestsTotal_Labels(t *testing.T) {
	labels := prometheus.Labels{"method": "GET", "route": "/api/v1/status", "status": "404"}

	var counter prometheus.Counter
	require.NotPanics(t, func() {
		counter = metrics.APIRequestsTotal.With(labels)
	})
	before := testutil.ToFloat64(counter)
	metrics.RecordAPIRequest("GET", "/api/v1/status", 404)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
