package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"siteforge/internal/middleware"
	"siteforge/internal/slug"
	"siteforge/internal/store"
)

// Builders groups the AI Builder HTTP handlers.
type Builders struct {
	builders *store.BuilderStore
	siteBase string
}

// NewBuilders creates the builder handler group. siteBase is the public
// base URL builder sites are published under, used for the share QR code.
func NewBuilders(builders *store.BuilderStore, siteBase string) *Builders {
	return &Builders{builders: builders, siteBase: siteBase}
}

type createBuilderRequest struct {
	SiteTitle string `json:"siteTitle"`
	BrandID   int64  `json:"brandID"`
	FontID    int64  `json:"fontID"`
	ColorID   int64  `json:"colorID"`
	UserID    string `json:"userID"`
}

// Create handles POST /api/ai-builder.
func (h *Builders) Create(w http.ResponseWriter, r *http.Request) {
	var req createBuilderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Please provide all required fields")
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if !requireString(req.SiteTitle) || !requireID(req.BrandID) ||
		!requireID(req.FontID) || !requireID(req.ColorID) || err != nil {
		respondError(w, http.StatusBadRequest, "Please provide all required fields")
		return
	}

	builder, err := h.builders.Create(req.SiteTitle, req.BrandID, req.FontID, req.ColorID, userID)
	if errors.Is(err, store.ErrDuplicateTitle) {
		respondError(w, http.StatusBadRequest, "Site title already exists. Please choose another title.")
		return
	}
	if errors.Is(err, store.ErrTitleCheck) {
		slog.Error("site title check failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Error checking existing site title")
		return
	}
	if err != nil {
		slog.Error("create builder failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to create AI Builder")
		return
	}

	respondData(w, "AI Builder has been added", builder)
}

// List handles GET /api/ai-builder: every builder with brand, font,
// color and user expanded.
func (h *Builders) List(w http.ResponseWriter, r *http.Request) {
	builders, err := h.builders.ListAll()
	if err != nil {
		slog.Error("list builders failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondData(w, "", builders)
}

// ListMine handles GET /api/ai-builder-id: builders owned by the caller.
func (h *Builders) ListMine(w http.ResponseWriter, r *http.Request) {
	id := middleware.IdentityFromCtx(r.Context())

	builders, err := h.builders.ListByUser(id.UserID)
	if err != nil {
		slog.Error("list builders by user failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(builders) == 0 {
		respondError(w, http.StatusNotFound, "User does not have a page yet")
		return
	}

	respondData(w, "", builders)
}

// GetMine handles GET /api/ai-builder-id-builder: one builder owned by
// the caller, selected with the id query parameter.
func (h *Builders) GetMine(w http.ResponseWriter, r *http.Request) {
	id := middleware.IdentityFromCtx(r.Context())

	builderID, ok := parseQueryID(r.URL.Query().Get("id"))
	if !ok {
		respondError(w, http.StatusNotFound, "User does not have a page yet")
		return
	}

	builders, err := h.builders.GetByUser(id.UserID, builderID)
	if err != nil {
		slog.Error("get builder by user failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(builders) == 0 {
		respondError(w, http.StatusNotFound, "User does not have a page yet")
		return
	}

	respondData(w, "", builders)
}

// Delete handles DELETE /api/ai-builder. Dependent sections, supports
// and styles are removed together with the builder row.
func (h *Builders) Delete(w http.ResponseWriter, r *http.Request) {
	builderID, ok := parseQueryID(r.URL.Query().Get("id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "Ai Builder ID is required")
		return
	}

	if err := h.builders.Delete(builderID); err != nil {
		slog.Error("delete builder failed", "error", err, "builder_id", builderID)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondData(w, "Ai Builder has been deleted", nil)
}

// ShareQR handles GET /api/ai-builder-qr: a PNG QR code pointing at the
// builder's published site.
func (h *Builders) ShareQR(w http.ResponseWriter, r *http.Request) {
	builderID, ok := parseQueryID(r.URL.Query().Get("id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "Ai Builder ID is required")
		return
	}

	title, err := h.builders.SiteTitle(builderID)
	if err != nil {
		slog.Error("builder qr lookup failed", "error", err, "builder_id", builderID)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if title == "" {
		respondError(w, http.StatusNotFound, "Ai Builder not found")
		return
	}

	png, err := qrcode.Encode(h.siteBase+"/"+slug.Generate(title), qrcode.Medium, 256)
	if err != nil {
		slog.Error("builder qr encode failed", "error", err, "builder_id", builderID)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
