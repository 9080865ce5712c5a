package handlers

import (
	"log/slog"
	"net/http"

	"siteforge/internal/store"
)

// Sections groups the builder section and style HTTP handlers.
type Sections struct {
	sections *store.SectionStore
	styles   *store.StyleStore
}

// NewSections creates the section/style handler group.
func NewSections(sections *store.SectionStore, styles *store.StyleStore) *Sections {
	return &Sections{sections: sections, styles: styles}
}

type createSectionRequest struct {
	StyleDesign        string `json:"styleDesign"`
	AiBuilderSupportID *int64 `json:"aiBuilderSupportID"`
	SectionID          int64  `json:"sectionID"`
	PageID             int64  `json:"pageID"`
	AiBuilderID        int64  `json:"aiBuilderID"`
}

// CreateSection handles POST /api/ai-builder-section.
func (h *Sections) CreateSection(w http.ResponseWriter, r *http.Request) {
	var req createSectionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	section, err := h.sections.Create(req.StyleDesign, req.SectionID, req.PageID, req.AiBuilderID, req.AiBuilderSupportID)
	if err != nil {
		slog.Error("create builder section failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondData(w, "Ai Builder Section has been added", section)
}

// ListSections handles GET /api/ai-builder-section with section, page,
// user and support relations expanded.
func (h *Sections) ListSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.sections.List()
	if err != nil {
		slog.Error("list builder sections failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondData(w, "", sections)
}

type createStyleRequest struct {
	StyleDesign string `json:"styleDesign"`
	SupportID   *int64 `json:"supportID"`
	SectionID   int64  `json:"sectionID"`
	PageID      int64  `json:"pageID"`
	AiBuilderID int64  `json:"aiBuilderID"`
}

// CreateStyle handles POST /api/ai-builder-style.
func (h *Sections) CreateStyle(w http.ResponseWriter, r *http.Request) {
	var req createStyleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	style, err := h.styles.Create(req.AiBuilderID, req.StyleDesign, req.SectionID, req.PageID, req.SupportID)
	if err != nil {
		slog.Error("create builder style failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondData(w, "Ai Builder Style has been added", style)
}

// ListStyles handles GET /api/ai-builder-style with section and page
// relations expanded.
func (h *Sections) ListStyles(w http.ResponseWriter, r *http.Request) {
	styles, err := h.styles.List()
	if err != nil {
		slog.Error("list builder styles failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondData(w, "", styles)
}
