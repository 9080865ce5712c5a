package store

import (
	"database/sql"
	"fmt"

	"siteforge/internal/models"
)

// TemplateStore handles section_templates database operations.
type TemplateStore struct {
	db *sql.DB
}

// NewTemplateStore creates a new TemplateStore with the given database connection.
func NewTemplateStore(db *sql.DB) *TemplateStore {
	return &TemplateStore{db: db}
}

// Create inserts a section template.
func (s *TemplateStore) Create(name string, isDevelope bool) (*models.SectionTemplate, error) {
	t := &models.SectionTemplate{}
	err := s.db.QueryRow(`
		INSERT INTO section_templates (name, is_develope)
		VALUES ($1, $2)
		RETURNING section_id, name, is_develope, created_at
	`, name, isDevelope).Scan(&t.SectionID, &t.Name, &t.IsDevelope, &t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create section template: %w", err)
	}
	return t, nil
}

// List returns all section templates ordered by ascending creation time.
func (s *TemplateStore) List() ([]models.SectionTemplate, error) {
	rows, err := s.db.Query(`
		SELECT section_id, name, is_develope, created_at
		FROM section_templates
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list section templates: %w", err)
	}
	defer rows.Close()

	var templates []models.SectionTemplate
	for rows.Next() {
		var t models.SectionTemplate
		if err := rows.Scan(&t.SectionID, &t.Name, &t.IsDevelope, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan section template: %w", err)
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

// GetByID retrieves a section template by id. Returns nil if not found.
func (s *TemplateStore) GetByID(sectionID int64) (*models.SectionTemplate, error) {
	t := &models.SectionTemplate{}
	err := s.db.QueryRow(`
		SELECT section_id, name, is_develope, created_at
		FROM section_templates WHERE section_id = $1
	`, sectionID).Scan(&t.SectionID, &t.Name, &t.IsDevelope, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get section template: %w", err)
	}
	return t, nil
}

// Update replaces a template's name and develop flag. Returns the
// updated row, or nil when no template matched the id.
func (s *TemplateStore) Update(sectionID int64, name string, isDevelope bool) (*models.SectionTemplate, error) {
	t := &models.SectionTemplate{}
	err := s.db.QueryRow(`
		UPDATE section_templates SET name = $1, is_develope = $2
		WHERE section_id = $3
		RETURNING section_id, name, is_develope, created_at
	`, name, isDevelope, sectionID).Scan(&t.SectionID, &t.Name, &t.IsDevelope, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update section template: %w", err)
	}
	return t, nil
}

// Delete removes a template. Returns the deleted row, or nil when no
// template matched the id.
func (s *TemplateStore) Delete(sectionID int64) (*models.SectionTemplate, error) {
	t := &models.SectionTemplate{}
	err := s.db.QueryRow(`
		DELETE FROM section_templates WHERE section_id = $1
		RETURNING section_id, name, is_develope, created_at
	`, sectionID).Scan(&t.SectionID, &t.Name, &t.IsDevelope, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete section template: %w", err)
	}
	return t, nil
}
