// Package router sets up all HTTP routes and middleware chains for the
// SiteForge API. Routes are organized into public, rate-limited,
// authenticated and privileged groups.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"siteforge/internal/handlers"
	"siteforge/internal/middleware"
	"siteforge/internal/token"
)

// Handlers bundles the handler groups the router wires up.
type Handlers struct {
	Auth         *handlers.Auth
	Verification *handlers.Verification
	Builders     *handlers.Builders
	Sections     *handlers.Sections
	Supports     *handlers.Supports
	Templates    *handlers.Templates
	Assets       *handlers.Assets
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(tokens *token.Store, policy *middleware.Policy, h Handlers) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadIdentity(tokens))

	// Health check — no auth.
	r.Get("/health", healthHandler)

	// Credential and code endpoints share a tight per-IP limit to slow
	// down guessing.
	codeLimiter := middleware.NewRateLimiter(10, time.Minute)

	r.Route("/auth", func(r chi.Router) {
		r.Use(codeLimiter.Middleware)
		r.Post("/register", h.Auth.Register)
		r.Post("/login", h.Auth.Login)
		r.Post("/logout", h.Auth.Logout)
		r.Post("/resend-code", h.Auth.ResendCode)
		r.Post("/verify-email", h.Verification.VerifyEmail)
	})

	r.Route("/api", func(r chi.Router) {
		r.With(codeLimiter.Middleware).Post("/otp-password", h.Verification.CheckOTP)

		// Public builder endpoints.
		r.Post("/ai-builder", h.Builders.Create)
		r.Get("/ai-builder", h.Builders.List)
		r.Post("/ai-builder-section", h.Sections.CreateSection)
		r.Get("/ai-builder-section", h.Sections.ListSections)
		r.Post("/ai-builder-style", h.Sections.CreateStyle)
		r.Get("/ai-builder-style", h.Sections.ListStyles)

		// Authenticated endpoints.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Get("/ai-builder-id", h.Builders.ListMine)
			r.Get("/ai-builder-id-builder", h.Builders.GetMine)
			r.Delete("/ai-builder", h.Builders.Delete)
			r.Get("/ai-builder-qr", h.Builders.ShareQR)

			r.Post("/ai-builder-support", h.Supports.Create)
			r.Get("/ai-builder-support", h.Supports.List)

			r.Post("/ai-builder-asset", h.Assets.Upload)
			r.Delete("/ai-builder-asset", h.Assets.Delete)

			r.Get("/section-templates", h.Templates.List)
			r.Get("/section-templates-id", h.Templates.Get)

			// Template mutations — restricted to privileged roles.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePrivileged(policy))
				r.Post("/section-templates", h.Templates.Create)
				r.Put("/section-templates", h.Templates.Update)
				r.Delete("/section-templates", h.Templates.Delete)
			})
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
