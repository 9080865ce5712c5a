package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSectionAndStyleCreate(t *testing.T) {
	env := newTestEnv(t)
	cat := seedCatalog(t, env.DB)
	userID := createTestUser(t, env, "section@handler-test.local", "123456")

	title := "handler-test sections"
	t.Cleanup(func() { cleanBuilders(t, env.DB, title) })
	builder, err := env.BuilderStore.Create(title, cat.Brand, cat.Font, cat.Color, userID)
	if err != nil {
		t.Fatalf("builder Create: %v", err)
	}
	support, err := env.SupportStore.Create(builder.ID, "faq")
	if err != nil {
		t.Fatalf("support Create: %v", err)
	}

	// Section with a support reference.
	rr := httptest.NewRecorder()
	env.Sections.CreateSection(rr, postJSON(t, "/api/ai-builder-section", map[string]any{
		"styleDesign":        `{"layout":"hero"}`,
		"aiBuilderSupportID": support.ID,
		"sectionID":          cat.Section,
		"pageID":             cat.Page,
		"aiBuilderID":        builder.ID,
	}))
	if rr.Code != http.StatusOK {
		t.Fatalf("section status: got %d, want 200 (body: %s)", rr.Code, rr.Body.String())
	}
	if e := decodeEnvelope(t, rr); e.Message != "Ai Builder Section has been added" {
		t.Errorf("section message: got %q", e.Message)
	}

	// Section without a support reference.
	rr = httptest.NewRecorder()
	env.Sections.CreateSection(rr, postJSON(t, "/api/ai-builder-section", map[string]any{
		"styleDesign": "{}",
		"sectionID":   cat.Section,
		"pageID":      cat.Page,
		"aiBuilderID": builder.ID,
	}))
	if rr.Code != http.StatusOK {
		t.Fatalf("section without support status: got %d, want 200 (body: %s)", rr.Code, rr.Body.String())
	}

	// Style.
	rr = httptest.NewRecorder()
	env.Sections.CreateStyle(rr, postJSON(t, "/api/ai-builder-style", map[string]any{
		"styleDesign": `{"theme":"dark"}`,
		"supportID":   support.ID,
		"sectionID":   cat.Section,
		"pageID":      cat.Page,
		"aiBuilderID": builder.ID,
	}))
	if rr.Code != http.StatusOK {
		t.Fatalf("style status: got %d, want 200 (body: %s)", rr.Code, rr.Body.String())
	}
	if e := decodeEnvelope(t, rr); e.Message != "Ai Builder Style has been added" {
		t.Errorf("style message: got %q", e.Message)
	}

	// Listings expose the created rows with relations expanded.
	rr = httptest.NewRecorder()
	env.Sections.ListSections(rr, httptest.NewRequest(http.MethodGet, "/api/ai-builder-section", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("list sections status: got %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "handler-test section") {
		t.Error("expected expanded section relation in listing")
	}

	rr = httptest.NewRecorder()
	env.Sections.ListStyles(rr, httptest.NewRequest(http.MethodGet, "/api/ai-builder-style", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("list styles status: got %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "handler-test page") {
		t.Error("expected expanded page relation in listing")
	}
}

func TestSupportCreateAndList(t *testing.T) {
	env := newTestEnv(t)
	cat := seedCatalog(t, env.DB)
	userID := createTestUser(t, env, "support@handler-test.local", "123456")

	title := "handler-test supports"
	t.Cleanup(func() { cleanBuilders(t, env.DB, title) })
	builder, err := env.BuilderStore.Create(title, cat.Brand, cat.Font, cat.Color, userID)
	if err != nil {
		t.Fatalf("builder Create: %v", err)
	}

	// Missing fields.
	rr := httptest.NewRecorder()
	env.Supports.Create(rr, postJSON(t, "/api/ai-builder-support", map[string]any{"supportType": "faq"}))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status without builder id: got %d, want 400", rr.Code)
	}

	rr = httptest.NewRecorder()
	env.Supports.Create(rr, postJSON(t, "/api/ai-builder-support", map[string]any{
		"aiBuilderID": builder.ID,
		"supportType": "newsletter",
	}))
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body: %s)", rr.Code, rr.Body.String())
	}
	if e := decodeEnvelope(t, rr); e.Message != "Ai Builder Support has been added" {
		t.Errorf("message: got %q", e.Message)
	}

	rr = httptest.NewRecorder()
	env.Supports.List(rr, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/ai-builder-support?id=%d", builder.ID), nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("list status: got %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "newsletter") {
		t.Error("expected created support in listing")
	}
}
