// Package handlers implements the SiteForge REST endpoints. Every
// response uses the uniform envelope {success, message?, data?} with a
// status code from the fixed set 200/400/401/403/404/429/500.
package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// envelope is the uniform JSON response shape.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// maxBodyBytes caps request bodies; every payload here is small JSON.
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

// respondData writes a success envelope with data and an optional message.
func respondData(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: message, Data: data})
}

// respondError writes a failure envelope.
func respondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: false, Message: message})
}

// decodeJSON parses a JSON request body into dst, limiting its size.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst)
	if err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}
