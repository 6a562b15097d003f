package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/vulnapi/pkg/usecase"
	"github.com/secmon-lab/vulnapi/pkg/utils/metrics"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router      chi.Router
	docsHandler *DocsHandler
	rootHandler *RootHandler
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	addr string,
	docsUC usecase.DocsUseCase,
	rootUC usecase.RootUseCase,
	m *metrics.Metrics,
) (*Server, error) {
	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(MetricsMiddleware(m))
	router.Use(CORS)
	router.Use(middleware.Recoverer)

	docsHandler := NewDocsHandler(docsUC, m)
	rootHandler := NewRootHandler(rootUC)

	router.Get("/", rootHandler.HandleRoot)
	router.Get("/health", rootHandler.HandleHealth)
	router.Handle("/metrics", m.Handler())

	router.Route("/api/docs", func(r chi.Router) {
		r.Get("/mode", docsHandler.HandleMode)
		r.Get("/stats", docsHandler.HandleStats)
		r.Get("/categories", docsHandler.HandleCategories)
		r.Get("/vulnerabilities", docsHandler.HandleListVulnerabilities)
		r.Get("/vulnerabilities/{id}", docsHandler.HandleGetVulnerability)
		r.Get("/compare", docsHandler.HandleListComparisons)
		r.Get("/compare/{id}", docsHandler.HandleCompare)
	})

	router.NotFound(handleNotFound)
	router.MethodNotAllowed(handleMethodNotAllowed)

	ctxlog.From(ctx).Debug("HTTP routes registered", "mode", docsUC.CurrentMode())

	server := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:      router,
		docsHandler: docsHandler,
		rootHandler: rootHandler,
	}

	return server, nil
}

// handleNotFound handles requests to unknown routes
func handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusNotFound, detailResponse{Detail: "Not Found"})
}

// handleMethodNotAllowed handles requests with an unsupported method
func handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusMethodNotAllowed, detailResponse{Detail: "Method Not Allowed"})
}
