package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates the database with initial development data: a verified
// super-admin user and a small brand/font/color/page/section catalog so
// builder endpoints work out of the box. No-op if users already exist.
func Seed(db *sql.DB) error {
	// Check if any users exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, role_id, is_verified)
		VALUES ($1, $2, '3de65f44-6341-4b4d-8d9f-c8ca3ea80b80', TRUE)
	`, "admin@siteforge.local", string(hash))
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	catalog := []struct {
		query string
		args  []any
	}{
		{"INSERT INTO brands (name, logo_url) VALUES ($1, $2)", []any{"Default Brand", ""}},
		{"INSERT INTO fonts (name, family) VALUES ($1, $2)", []any{"Inter", "sans-serif"}},
		{"INSERT INTO colors (name, value) VALUES ($1, $2)", []any{"Indigo", "#4f46e5"}},
		{"INSERT INTO pages (name) VALUES ($1)", []any{"Home"}},
		{"INSERT INTO sections (name) VALUES ($1)", []any{"Hero"}},
	}
	for _, c := range catalog {
		if _, err := db.Exec(c.query, c.args...); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}

	slog.Info("database seeded with default admin user",
		"email", "admin@siteforge.local",
		"password", "admin",
	)

	return nil
}
