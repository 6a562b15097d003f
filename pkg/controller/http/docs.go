package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/vulnapi/pkg/domain/model"
	"github.com/secmon-lab/vulnapi/pkg/domain/types"
	"github.com/secmon-lab/vulnapi/pkg/usecase"
	"github.com/secmon-lab/vulnapi/pkg/utils/metrics"
)

// forbiddenResponse is returned when vulnerability details are requested
// outside documentation mode
type forbiddenResponse struct {
	Error       string     `json:"error"`
	Message     string     `json:"message"`
	CurrentMode types.Mode `json:"current_mode"`
}

// DocsHandler handles the documentation endpoints
type DocsHandler struct {
	docsUC  usecase.DocsUseCase
	metrics *metrics.Metrics
}

// NewDocsHandler creates a new docs handler
func NewDocsHandler(docsUC usecase.DocsUseCase, m *metrics.Metrics) *DocsHandler {
	return &DocsHandler{
		docsUC:  docsUC,
		metrics: m,
	}
}

// HandleMode returns the current mode descriptor
func (h *DocsHandler) HandleMode(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.docsUC.Mode(r.Context()))
}

// HandleStats returns aggregate counts
func (h *DocsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.docsUC.Stats(r.Context()))
}

// HandleCategories returns category summaries
func (h *DocsHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.docsUC.Categories(r.Context()))
}

// HandleListVulnerabilities returns the filtered public list
func (h *DocsHandler) HandleListVulnerabilities(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	result := h.docsUC.ListVulnerabilities(r.Context(), query.Get("category"), query.Get("severity"))
	writeJSON(w, r, http.StatusOK, result)
}

// HandleGetVulnerability returns a full vulnerability record
func (h *DocsHandler) HandleGetVulnerability(w http.ResponseWriter, r *http.Request) {
	id := types.VulnerabilityID(chi.URLParam(r, "id"))

	vuln, err := h.docsUC.GetVulnerability(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, vuln)

	case errors.Is(err, model.ErrDocumentationDisabled):
		mode := h.docsUC.CurrentMode()
		h.metrics.ObserveDetailDenied(mode)
		ctxlog.From(r.Context()).Debug("Vulnerability detail denied", "id", id, "mode", mode)
		writeJSON(w, r, http.StatusForbidden, forbiddenResponse{
			Error:       "Documentation mode is disabled",
			Message:     "Set VULNAPI_MODE=documentation to access vulnerability details",
			CurrentMode: mode,
		})

	case errors.Is(err, model.ErrVulnerabilityNotFound):
		writeNotFound(w, r, id)

	default:
		writeError(w, r, err)
	}
}

// HandleCompare returns the code comparison for one vulnerability
func (h *DocsHandler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	id := types.VulnerabilityID(chi.URLParam(r, "id"))

	comparison, err := h.docsUC.Compare(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, comparison)
	case errors.Is(err, model.ErrVulnerabilityNotFound):
		writeNotFound(w, r, id)
	default:
		writeError(w, r, err)
	}
}

// HandleListComparisons returns the comparison index
func (h *DocsHandler) HandleListComparisons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.docsUC.ListComparisons(r.Context()))
}

func writeNotFound(w http.ResponseWriter, r *http.Request, id types.VulnerabilityID) {
	writeJSON(w, r, http.StatusNotFound, detailResponse{
		Detail: fmt.Sprintf("Vulnerability %s not found", id),
	})
}
