package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
)

func TestRequestMetrics(t *testing.T) {
	metricsManager, registry := metrics.NewTestManagerAndRegistry()

	r := mux.NewRouter()
	r.Use(RequestMetrics(metricsManager))
	r.HandleFunc("/workouts/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"1", "2", "3"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/workouts/"+id, nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	}

	assert.Equal(t, float64(3), testutil.ToFloat64(
		metricsManager.CounterRequests.WithLabelValues(http.MethodDelete, "404"),
	))

	// one series for the route template, not one per id
	count, err := testutil.GatherAndCount(registry, "fittrack_test_server_request_duration_seconds")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}
