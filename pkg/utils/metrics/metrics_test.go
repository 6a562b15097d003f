package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/secmon-lab/vulnapi/pkg/domain/types"
	"github.com/secmon-lab/vulnapi/pkg/utils/metrics"
)

func TestObserveRequest(t *testing.T) {
	m := metrics.New()
	m.ObserveRequest("/api/docs/stats", http.StatusOK, 10*time.Millisecond)
	m.ObserveRequest("/api/docs/stats", http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest("", http.StatusNotFound, time.Millisecond)

	n, err := testutil.GatherAndCount(m.Registry(), "vulnapi_http_requests_total")
	gt.NoError(t, err)
	gt.Equal(t, n, 2)
}

func TestObserveDetailDenied(t *testing.T) {
	m := metrics.New()
	m.ObserveDetailDenied(types.ModeChallenge)

	n, err := testutil.GatherAndCount(m.Registry(), "vulnapi_docs_detail_denied_total")
	gt.NoError(t, err)
	gt.Equal(t, n, 1)
}

func TestHandler(t *testing.T) {
	m := metrics.New()
	m.ObserveDetailDenied(types.ModeChallenge)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	gt.Equal(t, w.Code, http.StatusOK)
	gt.S(t, w.Body.String()).Contains(`vulnapi_docs_detail_denied_total{mode="challenge"} 1`)
}

func TestNilMetrics(t *testing.T) {
	var m *metrics.Metrics
	m.ObserveRequest("/", http.StatusOK, time.Millisecond)
	m.ObserveDetailDenied(types.ModeChallenge)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	gt.Equal(t, w.Code, http.StatusNotFound)
}
