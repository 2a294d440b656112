package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ManagerCodeAllocated()
	m.ManagerCodeAllocated()
	m.ManagerCodeCollision()
	m.AreaDeleteBlocked("AREA_HAS_MANAGERS")
	m.EventPublishFailed("manager.created")

	assert.InDelta(t, 2, testutil.ToFloat64(m.managerCodesAllocated), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.managerCodeCollisions), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.areaDeletesBlocked.WithLabelValues("AREA_HAS_MANAGERS")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.eventPublishFailures.WithLabelValues("manager.created")), 0)
}

func TestMetrics_IndependentInstances(t *testing.T) {
	first := New()
	second := New()

	first.ManagerCodeAllocated()

	assert.InDelta(t, 0, testutil.ToFloat64(second.managerCodesAllocated), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.RecordHTTPRequest(http.MethodGet, "/areas/:id", "200", 20*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `backoffice_http_requests_total{method="GET",path="/areas/:id",status="200"} 1`)
}
