// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRegisterLoginFlow(t *testing.T) {
	env := newTestEnv(t)
	email := "flow@handler-test.local"
	t.Cleanup(func() { env.DB.Exec(`DELETE FROM users WHERE email = $1`, email) })

	// Register.
	rr := httptest.NewRecorder()
	env.Auth.Register(rr, postJSON(t, "/auth/register", map[string]any{
		"email":    email,
		"password": "testpass123",
	}))
	if rr.Code != http.StatusOK {
		t.Fatalf("register status: got %d, want 200 (body: %s)", rr.Code, rr.Body.String())
	}
	if e := decodeEnvelope(t, rr); e.Message != "Registration successful. Please verify your email." {
		t.Errorf("register message: got %q", e.Message)
	}

	user, err := env.UserStore.FindByEmail(email)
	if err != nil || user == nil {
		t.Fatalf("registered user missing: %v", err)
	}
	if user.IsVerified {
		t.Error("expected new account unverified")
	}
	if user.VerificationCode == nil || len(*user.VerificationCode) != 6 {
		t.Errorf("expected 6-digit pending code, got %v", user.VerificationCode)
	}

	// Duplicate registration.
	rr = httptest.NewRecorder()
	env.Auth.Register(rr, postJSON(t, "/auth/register", map[string]any{
		"email":    email,
		"password": "testpass123",
	}))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register status: got %d, want 400", rr.Code)
	}
	if e := decodeEnvelope(t, rr); e.Message != "Email is already registered" {
		t.Errorf("duplicate register message: got %q", e.Message)
	}

	// Login before verification is forbidden.
	rr = httptest.NewRecorder()
	env.Auth.Login(rr, postJSON(t, "/auth/login", map[string]any{
		"email":    email,
		"password": "testpass123",
	}))
	if rr.Code != http.StatusForbidden {
		t.Fatalf("unverified login status: got %d, want 403", rr.Code)
	}

	// Verify with the stored code, then log in.
	rr = httptest.NewRecorder()
	env.Verification.VerifyEmail(rr, postJSON(t, "/auth/verify-email", map[string]any{
		"email": email,
		"code":  *user.VerificationCode,
	}))
	if rr.Code != http.StatusOK {
		t.Fatalf("verify status: got %d, want 200 (body: %s)", rr.Code, rr.Body.String())
	}

	// Wrong password.
	rr = httptest.NewRecorder()
	env.Auth.Login(rr, postJSON(t, "/auth/login", map[string]any{
		"email":    email,
		"password": "wrong",
	}))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("wrong password status: got %d, want 400", rr.Code)
	}
	if e := decodeEnvelope(t, rr); e.Message != "Invalid email or password" {
		t.Errorf("wrong password message: got %q", e.Message)
	}

	// Correct login issues a resolvable token.
	rr = httptest.NewRecorder()
	env.Auth.Login(rr, postJSON(t, "/auth/login", map[string]any{
		"email":    email,
		"password": "testpass123",
	}))
	if rr.Code != http.StatusOK {
		t.Fatalf("login status: got %d, want 200 (body: %s)", rr.Code, rr.Body.String())
	}
	e := decodeEnvelope(t, rr)
	data, ok := e.Data.(map[string]any)
	if !ok {
		t.Fatalf("login data: got %T", e.Data)
	}
	tok, _ := data["token"].(string)
	if tok == "" {
		t.Fatal("expected token in login response")
	}

	identity, err := env.Tokens.Get(context.Background(), tok)
	if err != nil {
		t.Fatalf("token Get: %v", err)
	}
	if identity == nil || identity.Email != email {
		t.Errorf("expected identity for %q, got %v", email, identity)
	}

	// Logout revokes the token.
	req := postJSON(t, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rr = httptest.NewRecorder()
	env.Auth.Logout(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("logout status: got %d, want 200", rr.Code)
	}

	identity, err = env.Tokens.Get(context.Background(), tok)
	if err != nil {
		t.Fatalf("token Get after logout: %v", err)
	}
	if identity != nil {
		t.Error("expected token revoked after logout")
	}
}

func TestResendCode(t *testing.T) {
	env := newTestEnv(t)
	email := "resend@handler-test.local"
	createTestUser(t, env, email, "111222")

	rr := httptest.NewRecorder()
	env.Auth.ResendCode(rr, postJSON(t, "/auth/resend-code", map[string]any{"email": email}))
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body: %s)", rr.Code, rr.Body.String())
	}
	if e := decodeEnvelope(t, rr); e.Message != "Verification code has been resent." {
		t.Errorf("message: got %q", e.Message)
	}

	user, _ := env.UserStore.FindByEmail(email)
	if user.VerificationCode == nil || *user.VerificationCode == "111222" {
		t.Errorf("expected a fresh code, got %v", user.VerificationCode)
	}

	// Unknown email.
	rr = httptest.NewRecorder()
	env.Auth.ResendCode(rr, postJSON(t, "/auth/resend-code", map[string]any{"email": "nobody@handler-test.local"}))
	if rr.Code != http.StatusNotFound {
		t.Errorf("status for unknown email: got %d, want 404", rr.Code)
	}

	// Verified accounts cannot request a code.
	env.UserStore.MarkVerified(email)
	rr = httptest.NewRecorder()
	env.Auth.ResendCode(rr, postJSON(t, "/auth/resend-code", map[string]any{"email": email}))
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status for verified account: got %d, want 400", rr.Code)
	}
}
