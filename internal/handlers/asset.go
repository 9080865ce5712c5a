package handlers

import (
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"

	"siteforge/internal/middleware"
	"siteforge/internal/storage"
)

// maxAssetBytes caps uploaded asset size (10 MiB).
const maxAssetBytes = 10 << 20

// Assets handles builder asset uploads to object storage. The storage
// client may be nil when no endpoint is configured.
type Assets struct {
	storage *storage.Client
}

// NewAssets creates the asset handler group.
func NewAssets(client *storage.Client) *Assets {
	return &Assets{storage: client}
}

// Upload handles POST /api/ai-builder-asset. Accepts a multipart form
// with a "file" field and returns the public URL of the stored object.
func (h *Assets) Upload(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		respondError(w, http.StatusInternalServerError, "Asset storage is not configured")
		return
	}

	if err := r.ParseMultipartForm(maxAssetBytes); err != nil {
		respondError(w, http.StatusBadRequest, "File is required")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	if header.Size > maxAssetBytes {
		respondError(w, http.StatusBadRequest, "File is too large")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// Keyed per user so uploads from different accounts never collide.
	id := middleware.IdentityFromCtx(r.Context())
	ext := strings.ToLower(path.Ext(header.Filename))
	key := "assets/" + id.UserID.String() + "/" + uuid.NewString() + ext

	if err := h.storage.Upload(r.Context(), key, contentType, file, header.Size); err != nil {
		slog.Error("asset upload failed", "key", key, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to upload asset")
		return
	}

	respondData(w, "Asset has been uploaded", map[string]any{
		"key": key,
		"url": h.storage.AssetURL(key),
	})
}

// Delete handles DELETE /api/ai-builder-asset?key=. Callers may only
// remove objects under their own assets/<user-id>/ prefix.
func (h *Assets) Delete(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		respondError(w, http.StatusInternalServerError, "Asset storage is not configured")
		return
	}

	key := r.URL.Query().Get("key")
	if !requireString(key) {
		respondError(w, http.StatusBadRequest, "Asset key is required")
		return
	}

	id := middleware.IdentityFromCtx(r.Context())
	prefix := "assets/" + id.UserID.String() + "/"
	if !strings.HasPrefix(key, prefix) || strings.Contains(key, "..") {
		respondError(w, http.StatusNotFound, "Asset not found")
		return
	}

	if err := h.storage.Delete(r.Context(), key); err != nil {
		slog.Error("asset delete failed", "key", key, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to delete asset")
		return
	}

	respondData(w, "Asset has been deleted", nil)
}
