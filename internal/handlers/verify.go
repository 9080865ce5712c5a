package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"siteforge/internal/store"
)

// Verification groups the email-verification and password-reset OTP
// endpoints.
type Verification struct {
	users *store.UserStore
}

// NewVerification creates the verification handler group.
func NewVerification(users *store.UserStore) *Verification {
	return &Verification{users: users}
}

// VerifyEmail handles POST /auth/verify-email. The submitted code must
// match the stored one exactly after trimming surrounding whitespace.
func (h *Verification) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Email and verification code are required.")
		return
	}
	if !requireString(req.Email) || !requireString(req.Code) {
		respondError(w, http.StatusBadRequest, "Email and verification code are required.")
		return
	}

	user, err := h.users.FindByEmail(strings.TrimSpace(req.Email))
	if err != nil {
		slog.Error("verify email lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Error fetching user data.")
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
	if user.VerificationCode == nil || strings.TrimSpace(req.Code) != *user.VerificationCode {
		respondError(w, http.StatusBadRequest, "Invalid verification code.")
		return
	}

	if err := h.users.MarkVerified(user.Email); err != nil {
		slog.Error("mark verified failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to verify user.")
		return
	}

	respondData(w, "Email verified successfully.", nil)
}

// CheckOTP handles POST /api/otp-password. On success the stored code
// is cleared so it cannot be replayed; the verified flag is untouched.
func (h *Verification) CheckOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OTP   string `json:"otp"`
		Email string `json:"email"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "OTP and email are required")
		return
	}
	if !requireString(req.OTP) || !requireString(req.Email) {
		respondError(w, http.StatusBadRequest, "OTP and email are required")
		return
	}

	// A lookup failure is indistinguishable from a missing user to the
	// caller; both report not found.
	user, err := h.users.FindByEmail(strings.TrimSpace(req.Email))
	if err != nil {
		slog.Error("otp lookup failed", "error", err)
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if user == nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if user.VerificationCode == nil || strings.TrimSpace(req.OTP) != *user.VerificationCode {
		respondError(w, http.StatusBadRequest, "Invalid OTP")
		return
	}

	if err := h.users.ClearVerificationCode(user.Email); err != nil {
		slog.Error("clear otp failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to update user information")
		return
	}

	respondData(w, "OTP verified successfully. You can now update your password.", nil)
}
