package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestActivityLogged(t *testing.T) {
	m := New()
	m.ActivityLogged("workout", nil)
	m.ActivityLogged("workout", nil)
	m.ActivityLogged("meal", errors.New("db down"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.activityLogs.WithLabelValues("workout", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.activityLogs.WithLabelValues("meal", "error")))
}

func TestRequestMetricsExposed(t *testing.T) {
	m := New()
	m.IncInFlight()
	m.ObserveRequest("GET", "/home", "200", 12*time.Millisecond)
	m.DecInFlight()

	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpInFlight))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/home", "200")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `fitness_tracker_http_requests_total{method="GET",path="/home",status="200"} 1`)
}
