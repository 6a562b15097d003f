package http

import (
	"net/http"

	"github.com/secmon-lab/vulnapi/pkg/usecase"
)

// RootHandler handles the service identity and health endpoints
type RootHandler struct {
	rootUC usecase.RootUseCase
}

// NewRootHandler creates a new root handler
func NewRootHandler(rootUC usecase.RootUseCase) *RootHandler {
	return &RootHandler{rootUC: rootUC}
}

// HandleRoot returns service metadata
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.rootUC.Info(r.Context()))
}

// HandleHealth handles health check requests
func (h *RootHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.rootUC.Health(r.Context()))
}
