package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"siteforge/internal/config"
	"siteforge/internal/otp"
	"siteforge/internal/store"
	"siteforge/internal/token"
)

// Auth groups registration, login and logout. New accounts start as
// unverified members; a verification code is generated at registration
// and again on resend.
type Auth struct {
	users  *store.UserStore
	tokens *token.Store
}

// NewAuth creates the authentication handler group.
func NewAuth(users *store.UserStore, tokens *token.Store) *Auth {
	return &Auth{users: users, tokens: tokens}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /auth/register.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}
	if !requireString(req.Email) || !requireString(req.Password) {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	code, err := otp.NewCode()
	if err != nil {
		slog.Error("generate verification code failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	memberRole := uuid.MustParse(config.DefaultMemberRoleID)
	user, err := h.users.Create(strings.TrimSpace(req.Email), req.Password, memberRole, code)
	if err == store.ErrDuplicateEmail {
		respondError(w, http.StatusBadRequest, "Email is already registered")
		return
	}
	if err != nil {
		slog.Error("register failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// The code is delivered out of band; the response only confirms
	// that one is pending.
	respondData(w, "Registration successful. Please verify your email.", map[string]any{
		"id":         user.ID,
		"email":      user.Email,
		"isVerified": user.IsVerified,
	})
}

// Login handles POST /auth/login. Issues an opaque bearer token stored
// in Valkey; only verified accounts may log in.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}
	if !requireString(req.Email) || !requireString(req.Password) {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.users.FindByEmail(strings.TrimSpace(req.Email))
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if user == nil || !h.users.CheckPassword(user, req.Password) {
		respondError(w, http.StatusBadRequest, "Invalid email or password")
		return
	}
	if !user.IsVerified {
		respondError(w, http.StatusForbidden, "Please verify your email before logging in")
		return
	}

	tok, err := h.tokens.Issue(r.Context(), &token.Identity{
		UserID: user.ID,
		RoleID: user.RoleID,
		Email:  user.Email,
	})
	if err != nil {
		slog.Error("token issue failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondData(w, "Login successful", map[string]any{
		"token":  tok,
		"userId": user.ID,
		"roleId": user.RoleID,
		"email":  user.Email,
	})
}

// ResendCode handles POST /auth/resend-code. Generates and stores a
// fresh verification code for an unverified account.
func (h *Auth) ResendCode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Email is required")
		return
	}
	if !requireString(req.Email) {
		respondError(w, http.StatusBadRequest, "Email is required")
		return
	}

	user, err := h.users.FindByEmail(strings.TrimSpace(req.Email))
	if err != nil {
		slog.Error("resend lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if user == nil {
		respondError(w, http.StatusNotFound, "User not found.")
		return
	}
	if user.IsVerified {
		respondError(w, http.StatusBadRequest, "User is already verified.")
		return
	}

	code, err := otp.NewCode()
	if err != nil {
		slog.Error("generate verification code failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if err := h.users.SetVerificationCode(user.Email, code); err != nil {
		slog.Error("store verification code failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondData(w, "Verification code has been resent.", nil)
}

// Logout handles POST /auth/logout. Revoking an unknown token is not
// an error.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	tok := token.FromRequest(r)
	if tok == "" {
		respondError(w, http.StatusBadRequest, "Authorization token is required")
		return
	}

	if err := h.tokens.Revoke(r.Context(), tok); err != nil {
		slog.Error("token revoke failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondData(w, "Logged out successfully", nil)
}
