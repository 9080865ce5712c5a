package store

import (
	"database/sql"
	"fmt"

	"siteforge/internal/models"
)

// StyleStore handles ai_builder_styles database operations.
type StyleStore struct {
	db *sql.DB
}

// NewStyleStore creates a new StyleStore with the given database connection.
func NewStyleStore(db *sql.DB) *StyleStore {
	return &StyleStore{db: db}
}

// Create inserts a builder style with server-set timestamps.
func (s *StyleStore) Create(builderID int64, styleDesign string, sectionID, pageID int64, supportID *int64) (*models.AiBuilderStyle, error) {
	now := jakartaNow()
	st := &models.AiBuilderStyle{}
	err := s.db.QueryRow(`
		INSERT INTO ai_builder_styles (ai_builder_id, style_design, section_id, page_id, support_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id, ai_builder_id, style_design, section_id, page_id, support_id, created_at, updated_at
	`, builderID, styleDesign, sectionID, pageID, supportID, now).Scan(
		&st.ID, &st.AiBuilderID, &st.StyleDesign, &st.SectionID, &st.PageID,
		&st.SupportID, &st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create builder style: %w", err)
	}
	return st, nil
}

// List returns every builder style with section and page relations expanded.
func (s *StyleStore) List() ([]models.AiBuilderStyleDetail, error) {
	rows, err := s.db.Query(`
		SELECT
			st.id, st.ai_builder_id, st.style_design, st.section_id, st.page_id,
			st.support_id, st.created_at, st.updated_at,
			sec.section_id, sec.name, sec.created_at,
			p.page_id, p.name, p.created_at
		FROM ai_builder_styles st
		JOIN sections sec ON sec.section_id = st.section_id
		JOIN pages p ON p.page_id = st.page_id
		ORDER BY st.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list builder styles: %w", err)
	}
	defer rows.Close()

	var styles []models.AiBuilderStyleDetail
	for rows.Next() {
		var d models.AiBuilderStyleDetail
		d.Section = &models.Section{}
		d.Page = &models.Page{}
		if err := rows.Scan(
			&d.ID, &d.AiBuilderID, &d.StyleDesign, &d.SectionID, &d.PageID,
			&d.SupportID, &d.CreatedAt, &d.UpdatedAt,
			&d.Section.ID, &d.Section.Name, &d.Section.CreatedAt,
			&d.Page.ID, &d.Page.Name, &d.Page.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan builder style: %w", err)
		}
		styles = append(styles, d)
	}
	return styles, rows.Err()
}

// CountByBuilder returns how many styles reference a builder.
func (s *StyleStore) CountByBuilder(builderID int64) (int, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM ai_builder_styles WHERE ai_builder_id = $1
	`, builderID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count builder styles: %w", err)
	}
	return count, nil
}
