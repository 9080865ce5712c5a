// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"siteforge/internal/config"
	"siteforge/internal/database"
	"siteforge/internal/models"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "siteforge")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "siteforge")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := testDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	// Run migrations to ensure the schema is current.
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Downgrade goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// catalogFixture holds the catalog row IDs builder tests reference.
type catalogFixture struct {
	Brand   int64
	Font    int64
	Color   int64
	Page    int64
	Section int64
}

// seedCatalog inserts one row per catalog table and registers cleanup.
// Builders referencing these rows must be removed first; register
// cleanBuilders AFTER calling seedCatalog so it runs before this one.
func seedCatalog(t *testing.T, db *sql.DB) catalogFixture {
	t.Helper()

	var f catalogFixture
	steps := []struct {
		query string
		dst   *int64
	}{
		{`INSERT INTO brands (name) VALUES ('store-test brand') RETURNING brand_id`, &f.Brand},
		{`INSERT INTO fonts (name, family) VALUES ('store-test font', 'sans-serif') RETURNING font_id`, &f.Font},
		{`INSERT INTO colors (name, value) VALUES ('store-test color', '#112233') RETURNING color_id`, &f.Color},
		{`INSERT INTO pages (name) VALUES ('store-test page') RETURNING page_id`, &f.Page},
		{`INSERT INTO sections (name) VALUES ('store-test section') RETURNING section_id`, &f.Section},
	}
	for _, step := range steps {
		if err := db.QueryRow(step.query).Scan(step.dst); err != nil {
			t.Fatalf("seed catalog: %v", err)
		}
	}

	t.Cleanup(func() {
		db.Exec(`DELETE FROM brands WHERE brand_id = $1`, f.Brand)
		db.Exec(`DELETE FROM fonts WHERE font_id = $1`, f.Font)
		db.Exec(`DELETE FROM colors WHERE color_id = $1`, f.Color)
		db.Exec(`DELETE FROM pages WHERE page_id = $1`, f.Page)
		db.Exec(`DELETE FROM sections WHERE section_id = $1`, f.Section)
	})
	return f
}

// createTestUser inserts a verified member account and registers cleanup.
func createTestUser(t *testing.T, db *sql.DB, email string) *models.User {
	t.Helper()

	s := NewUserStore(db)
	user, err := s.Create(email, "testpass123", uuid.MustParse(config.DefaultMemberRoleID), "123456")
	if err != nil {
		t.Fatalf("create test user: %v", err)
	}
	t.Cleanup(func() { cleanUsers(t, db, email) })
	return user
}

// cleanUsers removes test users by email. Call in t.Cleanup().
func cleanUsers(t *testing.T, db *sql.DB, emails ...string) {
	t.Helper()
	for _, email := range emails {
		db.Exec(`DELETE FROM users WHERE email = $1`, email)
	}
}

// cleanBuilders removes test builders and their child rows by site title.
// Call in t.Cleanup().
func cleanBuilders(t *testing.T, db *sql.DB, siteTitles ...string) {
	t.Helper()
	for _, title := range siteTitles {
		db.Exec(`DELETE FROM ai_builder_sections WHERE ai_builder_id IN
			(SELECT ai_builder_id FROM ai_builders WHERE site_title = $1)`, title)
		db.Exec(`DELETE FROM ai_builder_styles WHERE ai_builder_id IN
			(SELECT ai_builder_id FROM ai_builders WHERE site_title = $1)`, title)
		db.Exec(`DELETE FROM ai_builder_supports WHERE ai_builder_id IN
			(SELECT ai_builder_id FROM ai_builders WHERE site_title = $1)`, title)
		db.Exec(`DELETE FROM ai_builders WHERE site_title = $1`, title)
	}
}

// cleanSectionTemplates removes test section templates by name. Call in
// t.Cleanup().
func cleanSectionTemplates(t *testing.T, db *sql.DB, names ...string) {
	t.Helper()
	for _, name := range names {
		db.Exec(`DELETE FROM section_templates WHERE name = $1`, name)
	}
}
