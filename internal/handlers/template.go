package handlers

import (
	"log/slog"
	"net/http"

	"siteforge/internal/store"
)

// Templates groups the section template HTTP handlers. Mutations are
// role-gated by middleware; handlers themselves carry no role checks.
type Templates struct {
	templates *store.TemplateStore
}

// NewTemplates creates the section template handler group.
func NewTemplates(templates *store.TemplateStore) *Templates {
	return &Templates{templates: templates}
}

type templateRequest struct {
	Name       string `json:"name"`
	IsDevelope bool   `json:"isDevelope"`
}

// Create handles POST /api/section-templates.
func (h *Templates) Create(w http.ResponseWriter, r *http.Request) {
	var req templateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	template, err := h.templates.Create(req.Name, req.IsDevelope)
	if err != nil {
		slog.Error("create section template failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondData(w, "Section has been added", template)
}

// List handles GET /api/section-templates, ordered by ascending
// creation time.
func (h *Templates) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.templates.List()
	if err != nil {
		slog.Error("list section templates failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondData(w, "", templates)
}

// Get handles GET /api/section-templates-id.
func (h *Templates) Get(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		respondError(w, http.StatusBadRequest, "ID is required")
		return
	}

	// A malformed id cannot match any template; report it like an
	// unknown one.
	sectionID, ok := parseQueryID(raw)
	if !ok {
		respondError(w, http.StatusNotFound, "Section not found")
		return
	}

	template, err := h.templates.GetByID(sectionID)
	if err != nil {
		slog.Error("get section template failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if template == nil {
		respondError(w, http.StatusNotFound, "Section not found")
		return
	}

	respondData(w, "", template)
}

// Update handles PUT /api/section-templates.
func (h *Templates) Update(w http.ResponseWriter, r *http.Request) {
	sectionID, ok := parseQueryID(r.URL.Query().Get("id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "ID is required")
		return
	}

	var req templateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	template, err := h.templates.Update(sectionID, req.Name, req.IsDevelope)
	if err != nil {
		slog.Error("update section template failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondData(w, "Section has been updated", template)
}

// Delete handles DELETE /api/section-templates.
func (h *Templates) Delete(w http.ResponseWriter, r *http.Request) {
	sectionID, ok := parseQueryID(r.URL.Query().Get("id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "ID is required")
		return
	}

	template, err := h.templates.Delete(sectionID)
	if err != nil {
		slog.Error("delete section template failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondData(w, "Section has been deleted", template)
}
