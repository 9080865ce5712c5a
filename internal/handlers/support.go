package handlers

import (
	"log/slog"
	"net/http"

	"siteforge/internal/store"
)

// Supports groups the ai_builder_supports HTTP handlers.
type Supports struct {
	supports *store.SupportStore
}

// NewSupports creates the support handler group.
func NewSupports(supports *store.SupportStore) *Supports {
	return &Supports{supports: supports}
}

type createSupportRequest struct {
	AiBuilderID int64  `json:"aiBuilderID"`
	SupportType string `json:"supportType"`
}

// Create handles POST /api/ai-builder-support.
func (h *Supports) Create(w http.ResponseWriter, r *http.Request) {
	var req createSupportRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !requireID(req.AiBuilderID) || !requireString(req.SupportType) {
		respondError(w, http.StatusBadRequest, "Please provide all required fields")
		return
	}

	support, err := h.supports.Create(req.AiBuilderID, req.SupportType)
	if err != nil {
		slog.Error("create builder support failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondData(w, "Ai Builder Support has been added", support)
}

// List handles GET /api/ai-builder-support filtered by the id query
// parameter (the owning builder).
func (h *Supports) List(w http.ResponseWriter, r *http.Request) {
	builderID, ok := parseQueryID(r.URL.Query().Get("id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "Ai Builder ID is required")
		return
	}

	supports, err := h.supports.ListByBuilder(builderID)
	if err != nil {
		slog.Error("list builder supports failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondData(w, "", supports)
}
