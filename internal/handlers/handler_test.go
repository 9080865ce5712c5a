// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler integration
// tests. Tests are skipped when PostgreSQL or Valkey are unavailable.
package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"siteforge/internal/config"
	"siteforge/internal/database"
	"siteforge/internal/middleware"
	"siteforge/internal/store"
	"siteforge/internal/token"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "siteforge")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "siteforge")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "token:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB            *sql.DB
	Tokens        *token.Store
	UserStore     *store.UserStore
	BuilderStore  *store.BuilderStore
	SectionStore  *store.SectionStore
	StyleStore    *store.StyleStore
	SupportStore  *store.SupportStore
	TemplateStore *store.TemplateStore
	Auth          *Auth
	Verification  *Verification
	Builders      *Builders
	Sections      *Sections
	Supports      *Supports
	Templates     *Templates
}

// newTestEnv creates a complete test environment with all handler dependencies.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	tokens := token.NewStore(vk)
	userStore := store.NewUserStore(db)
	builderStore := store.NewBuilderStore(db)
	sectionStore := store.NewSectionStore(db)
	styleStore := store.NewStyleStore(db)
	supportStore := store.NewSupportStore(db)
	templateStore := store.NewTemplateStore(db)

	return &testEnv{
		DB:            db,
		Tokens:        tokens,
		UserStore:     userStore,
		BuilderStore:  builderStore,
		SectionStore:  sectionStore,
		StyleStore:    styleStore,
		SupportStore:  supportStore,
		TemplateStore: templateStore,
		Auth:          NewAuth(userStore, tokens),
		Verification:  NewVerification(userStore),
		Builders:      NewBuilders(builderStore, "https://sites.siteforge.local"),
		Sections:      NewSections(sectionStore, styleStore),
		Supports:      NewSupports(supportStore),
		Templates:     NewTemplates(templateStore),
	}
}

// withIdentity attaches a caller identity to a request, as LoadIdentity
// would for a valid bearer token.
func withIdentity(r *http.Request, id *token.Identity) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), middleware.IdentityKey, id))
}

// decodeEnvelope parses the uniform response envelope from a recorder.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body: %s)", err, rr.Body.String())
	}
	return env
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
func seedCatalog(t *testing.T, db *sql.DB) catalogFixture {
	t.Helper()

	var f catalogFixture
	steps := []struct {
		query string
		dst   *int64
	}{
		{`INSERT INTO brands (name) VALUES ('handler-test brand') RETURNING brand_id`, &f.Brand},
		{`INSERT INTO fonts (name, family) VALUES ('handler-test font', 'serif') RETURNING font_id`, &f.Font},
		{`INSERT INTO colors (name, value) VALUES ('handler-test color', '#445566') RETURNING color_id`, &f.Color},
		{`INSERT INTO pages (name) VALUES ('handler-test page') RETURNING page_id`, &f.Page},
		{`INSERT INTO sections (name) VALUES ('handler-test section') RETURNING section_id`, &f.Section},
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

// createTestUser inserts a member account and registers cleanup.
func createTestUser(t *testing.T, env *testEnv, email, code string) uuid.UUID {
	t.Helper()

	user, err := env.UserStore.Create(email, "testpass123", uuid.MustParse(config.DefaultMemberRoleID), code)
	if err != nil {
		t.Fatalf("create test user: %v", err)
	}
	t.Cleanup(func() { env.DB.Exec(`DELETE FROM users WHERE email = $1`, email) })
	return user.ID
}

// cleanBuilders removes test builders and their child rows by site title.
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

// cleanSectionTemplates removes test section templates by name.
func cleanSectionTemplates(t *testing.T, db *sql.DB, names ...string) {
	t.Helper()
	for _, name := range names {
		db.Exec(`DELETE FROM section_templates WHERE name = $1`, name)
	}
}
