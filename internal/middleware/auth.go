// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"siteforge/internal/token"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// IdentityKey is the context key for the caller's identity.
	IdentityKey contextKey = "identity"
)

// LoadIdentity resolves the bearer token against the token store and
// places the caller's identity in the request context. It does NOT
// enforce authentication — requests without a valid token pass through
// unauthenticated.
func LoadIdentity(tokens *token.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := token.FromRequest(r)
			if tok == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := tokens.Get(r.Context(), tok)
			if err != nil {
				// Log-free pass-through; treat as unauthenticated.
				next.ServeHTTP(w, r)
				return
			}

			if id != nil {
				ctx := context.WithValue(r.Context(), IdentityKey, id)
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth rejects requests without a resolved identity with 401.
// Must be applied after LoadIdentity in the middleware chain.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IdentityFromCtx(r.Context()) == nil {
			writeEnvelope(w, http.StatusUnauthorized, "Unauthorized: missing or invalid token")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Policy decides which role identifiers may mutate privileged resources
// (section templates). Centralizing the check keeps role literals out
// of handlers.
type Policy struct {
	privileged map[uuid.UUID]struct{}
}

// NewPolicy builds a Policy from the configured privileged role IDs.
// Malformed IDs are skipped.
func NewPolicy(roleIDs []string) *Policy {
	p := &Policy{privileged: make(map[uuid.UUID]struct{}, len(roleIDs))}
	for _, raw := range roleIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		p.privileged[id] = struct{}{}
	}
	return p
}

// IsPrivileged reports whether the role may perform privileged mutations.
func (p *Policy) IsPrivileged(roleID uuid.UUID) bool {
	_, ok := p.privileged[roleID]
	return ok
}

// RequirePrivileged returns 403 unless the authenticated caller's role
// passes the policy. Must be applied after RequireAuth.
func RequirePrivileged(policy *Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := IdentityFromCtx(r.Context())
			if id == nil || !policy.IsPrivileged(id.RoleID) {
				writeEnvelope(w, http.StatusForbidden, "Forbidden: You do not have access to this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// IdentityFromCtx extracts the caller identity from the request context.
// Returns nil if the request is not authenticated.
func IdentityFromCtx(ctx context.Context) *token.Identity {
	id, _ := ctx.Value(IdentityKey).(*token.Identity)
	return id
}

// writeEnvelope emits the API's uniform failure envelope.
func writeEnvelope(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": message,
	})
}
