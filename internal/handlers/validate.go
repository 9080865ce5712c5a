package handlers

import (
	"strconv"
	"strings"
)

// requireString reports whether a required string field is present.
func requireString(v string) bool {
	return strings.TrimSpace(v) != ""
}

// requireID reports whether a required numeric identifier is present.
// Zero means the field was absent from the JSON body.
func requireID(v int64) bool {
	return v > 0
}

// parseQueryID parses a numeric id query parameter. Returns (0, false)
// when the parameter is missing or not a positive integer.
func parseQueryID(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
