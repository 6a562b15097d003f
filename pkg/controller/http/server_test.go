package http_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	controller "github.com/secmon-lab/vulnapi/pkg/controller/http"
	"github.com/secmon-lab/vulnapi/pkg/domain/model"
	"github.com/secmon-lab/vulnapi/pkg/domain/types"
	"github.com/secmon-lab/vulnapi/pkg/repository"
	"github.com/secmon-lab/vulnapi/pkg/usecase"
	"github.com/secmon-lab/vulnapi/pkg/utils/metrics"
)

func testRecords() []*model.Vulnerability {
	return []*model.Vulnerability{
		{
			ID:             "V01",
			Name:           "Broken Object Level Authorization",
			Category:       "BOLA",
			Severity:       "high",
			OWASP:          "API1:2023",
			CWE:            "CWE-639",
			Description:    "Access other users' data",
			VulnerableCode: "db.FindUser(id)",
			SecureCode:     "if owner(id) { db.FindUser(id) }",
			Remediation:    []string{"Check ownership"},
			Flag:           "VULNAPI{bola}",
		},
		{
			ID:          "G01",
			Name:        "GraphQL Introspection",
			Category:    "Introspection",
			Severity:    "medium",
			OWASP:       "API8:2023",
			CWE:         "CWE-200",
			Description: "Schema is exposed",
		},
	}
}

type testServer struct {
	server  *controller.Server
	metrics *metrics.Metrics
}

func newTestServer(t *testing.T, mode types.Mode) *testServer {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	ctx = ctxlog.With(ctx, logger)

	kd := model.KeyDifferencesConfig{
		KeyDifferences: []model.KeyDifference{
			{ID: "V01", Hint: "Add authorization check"},
		},
	}

	docsUC := usecase.NewDocs(repository.NewMemory(testRecords()...), kd.Table(), mode)
	rootUC := usecase.NewRoot("0.2.0", mode)
	m := metrics.New()

	server, err := controller.NewServer(ctx, ":8080", docsUC, rootUC, m)
	gt.NoError(t, err).Required()

	return &testServer{server: server, metrics: m}
}

func (s *testServer) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.server.Server.Handler.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &v)).Required()
	return v
}

func TestServerRoot(t *testing.T) {
	s := newTestServer(t, types.ModeChallenge)

	w := s.get(t, "/")
	gt.Equal(t, w.Code, http.StatusOK)
	gt.Equal(t, w.Header().Get("Content-Type"), "application/json")

	body := decode[map[string]any](t, w)
	gt.Equal(t, body["name"], any("VulnAPI"))
	gt.Equal(t, body["version"], any("0.2.0"))
	gt.Equal(t, body["mode"], any("challenge"))
	gt.Equal(t, body["implementation"], any("Go/chi"))
	gt.NotNil(t, body["message"])
}

func TestServerHealthCheck(t *testing.T) {
	s := newTestServer(t, types.ModeChallenge)

	w := s.get(t, "/health")
	gt.Equal(t, w.Code, http.StatusOK)

	body := decode[map[string]string](t, w)
	gt.Equal(t, body["status"], "healthy")
	gt.Equal(t, body["implementation"], "go-chi")
}

func TestServerDocsMode(t *testing.T) {
	t.Run("challenge", func(t *testing.T) {
		w := newTestServer(t, types.ModeChallenge).get(t, "/api/docs/mode")
		gt.Equal(t, w.Code, http.StatusOK)

		body := decode[map[string]any](t, w)
		gt.Equal(t, body["mode"], any("challenge"))
		gt.Equal(t, body["documentation_enabled"], any(false))
		gt.Equal(t, body["description"], any("Challenge mode: Limited information, find vulnerabilities yourself"))
	})

	t.Run("documentation", func(t *testing.T) {
		w := newTestServer(t, types.ModeDocumentation).get(t, "/api/docs/mode")
		body := decode[map[string]any](t, w)
		gt.Equal(t, body["mode"], any("documentation"))
		gt.Equal(t, body["documentation_enabled"], any(true))
	})
}

func TestServerDocsStats(t *testing.T) {
	w := newTestServer(t, types.ModeChallenge).get(t, "/api/docs/stats")
	gt.Equal(t, w.Code, http.StatusOK)

	stats := decode[model.Stats](t, w)
	gt.Equal(t, stats.Total, 2)
	gt.Equal(t, stats.RESTAPI, 1)
	gt.Equal(t, stats.GraphQL, 1)
	gt.Equal(t, stats.BySeverity, map[string]int{"high": 1, "medium": 1})
	gt.Equal(t, stats.ByCategory, map[string]int{"BOLA": 1, "Introspection": 1})
}

func TestServerDocsCategories(t *testing.T) {
	w := newTestServer(t, types.ModeChallenge).get(t, "/api/docs/categories")
	gt.Equal(t, w.Code, http.StatusOK)

	categories := decode[[]model.CategorySummary](t, w)
	gt.Equal(t, len(categories), 2)
	gt.Equal(t, categories[0].Name, "BOLA")
	gt.Equal(t, categories[0].Count, 1)
	gt.Equal(t, categories[0].Vulnerabilities, []types.VulnerabilityID{"V01"})
}

func TestServerDocsListVulnerabilities(t *testing.T) {
	s := newTestServer(t, types.ModeDocumentation)

	t.Run("all", func(t *testing.T) {
		w := s.get(t, "/api/docs/vulnerabilities")
		gt.Equal(t, w.Code, http.StatusOK)

		list := decode[[]map[string]any](t, w)
		gt.Equal(t, len(list), 2)
		gt.Equal(t, list[0]["id"], any("V01"))
		gt.Equal(t, len(list[0]), 7)
		_, hasCode := list[0]["vulnerable_code"]
		gt.False(t, hasCode)
	})

	t.Run("by category", func(t *testing.T) {
		list := decode[[]model.PublicVulnerability](t, s.get(t, "/api/docs/vulnerabilities?category=Introspection"))
		gt.Equal(t, len(list), 1)
		gt.Equal(t, list[0].ID.String(), "G01")
	})

	t.Run("by category and severity", func(t *testing.T) {
		list := decode[[]model.PublicVulnerability](t, s.get(t, "/api/docs/vulnerabilities?category=BOLA&severity=medium"))
		gt.Equal(t, len(list), 0)
	})

	t.Run("no match encodes empty array", func(t *testing.T) {
		w := s.get(t, "/api/docs/vulnerabilities?severity=low")
		gt.Equal(t, w.Body.String(), "[]\n")
	})
}

func TestServerDocsGetVulnerability(t *testing.T) {
	t.Run("forbidden in challenge mode", func(t *testing.T) {
		s := newTestServer(t, types.ModeChallenge)
		w := s.get(t, "/api/docs/vulnerabilities/V01")
		gt.Equal(t, w.Code, http.StatusForbidden)

		body := decode[map[string]string](t, w)
		gt.Equal(t, body["current_mode"], "challenge")
		gt.Equal(t, body["error"], "Documentation mode is disabled")
		gt.S(t, body["message"]).Contains("documentation")
	})

	t.Run("forbidden in challenge mode even for unknown id", func(t *testing.T) {
		w := newTestServer(t, types.ModeChallenge).get(t, "/api/docs/vulnerabilities/Z99")
		gt.Equal(t, w.Code, http.StatusForbidden)
	})

	t.Run("full record in documentation mode", func(t *testing.T) {
		w := newTestServer(t, types.ModeDocumentation).get(t, "/api/docs/vulnerabilities/V01")
		gt.Equal(t, w.Code, http.StatusOK)

		v := decode[model.Vulnerability](t, w)
		gt.Equal(t, v.ID.String(), "V01")
		gt.Equal(t, v.VulnerableCode, "db.FindUser(id)")
		gt.Equal(t, v.Remediation, []string{"Check ownership"})
		gt.Equal(t, v.Flag, "VULNAPI{bola}")
	})

	t.Run("not found in documentation mode", func(t *testing.T) {
		w := newTestServer(t, types.ModeDocumentation).get(t, "/api/docs/vulnerabilities/Z99")
		gt.Equal(t, w.Code, http.StatusNotFound)

		body := decode[map[string]string](t, w)
		gt.Equal(t, body, map[string]string{"detail": "Vulnerability Z99 not found"})
	})
}

func TestServerDocsCompare(t *testing.T) {
	for _, mode := range []types.Mode{types.ModeChallenge, types.ModeDocumentation} {
		t.Run(mode.String(), func(t *testing.T) {
			s := newTestServer(t, mode)

			w := s.get(t, "/api/docs/compare/V01")
			gt.Equal(t, w.Code, http.StatusOK)
			c := decode[model.Comparison](t, w)
			gt.Equal(t, c.KeyDifference, "Add authorization check")
			gt.Equal(t, c.SecureCode, "if owner(id) { db.FindUser(id) }")

			w = s.get(t, "/api/docs/compare/G01")
			c = decode[model.Comparison](t, w)
			gt.Equal(t, c.KeyDifference, "See secure_code for the fix")

			w = s.get(t, "/api/docs/compare/Z99")
			gt.Equal(t, w.Code, http.StatusNotFound)
			gt.Equal(t, decode[map[string]string](t, w)["detail"], "Vulnerability Z99 not found")
		})
	}
}

func TestServerDocsListComparisons(t *testing.T) {
	w := newTestServer(t, types.ModeChallenge).get(t, "/api/docs/compare")
	gt.Equal(t, w.Code, http.StatusOK)

	list := decode[[]model.ComparisonSummary](t, w)
	gt.Equal(t, len(list), 2)
	gt.Equal(t, list[0].KeyDifference, "Add authorization check")
	gt.Equal(t, list[1].KeyDifference, "")
}

func TestServerNotFound(t *testing.T) {
	w := newTestServer(t, types.ModeChallenge).get(t, "/api/unknown")
	gt.Equal(t, w.Code, http.StatusNotFound)
	gt.Equal(t, decode[map[string]string](t, w)["detail"], "Not Found")
}

func TestServerCORSPreflight(t *testing.T) {
	s := newTestServer(t, types.ModeChallenge)
	req := httptest.NewRequest(http.MethodOptions, "/api/docs/stats", nil)
	w := httptest.NewRecorder()
	s.server.Server.Handler.ServeHTTP(w, req)

	gt.Equal(t, w.Code, http.StatusNoContent)
	gt.Equal(t, w.Header().Get("Access-Control-Allow-Origin"), "*")
}

func TestServerMetrics(t *testing.T) {
	s := newTestServer(t, types.ModeChallenge)
	s.get(t, "/api/docs/stats")
	s.get(t, "/api/docs/vulnerabilities/V01")

	w := s.get(t, "/metrics")
	gt.Equal(t, w.Code, http.StatusOK)
	gt.S(t, w.Body.String()).Contains(`vulnapi_http_requests_total{route="/api/docs/stats",status="200"} 1`)
	gt.S(t, w.Body.String()).Contains(`vulnapi_http_requests_total{route="/api/docs/vulnerabilities/{id}",status="403"} 1`)
	gt.S(t, w.Body.String()).Contains(`vulnapi_docs_detail_denied_total{mode="challenge"} 1`)
}
