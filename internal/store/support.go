package store

import (
	"database/sql"
	"fmt"

	"siteforge/internal/models"
)

// SupportStore handles ai_builder_supports database operations.
type SupportStore struct {
	db *sql.DB
}

// NewSupportStore creates a new SupportStore with the given database connection.
func NewSupportStore(db *sql.DB) *SupportStore {
	return &SupportStore{db: db}
}

// Create inserts a support row attached to a builder.
func (s *SupportStore) Create(builderID int64, supportType string) (*models.AiBuilderSupport, error) {
	sp := &models.AiBuilderSupport{}
	err := s.db.QueryRow(`
		INSERT INTO ai_builder_supports (ai_builder_id, support_type, created_at)
		VALUES ($1, $2, $3)
		RETURNING ai_builder_support_id, ai_builder_id, support_type, created_at
	`, builderID, supportType, jakartaNow()).Scan(
		&sp.ID, &sp.AiBuilderID, &sp.SupportType, &sp.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create support: %w", err)
	}
	return sp, nil
}

// ListByBuilder returns the supports attached to a builder.
func (s *SupportStore) ListByBuilder(builderID int64) ([]models.AiBuilderSupport, error) {
	rows, err := s.db.Query(`
		SELECT ai_builder_support_id, ai_builder_id, support_type, created_at
		FROM ai_builder_supports
		WHERE ai_builder_id = $1
		ORDER BY ai_builder_support_id ASC
	`, builderID)
	if err != nil {
		return nil, fmt.Errorf("list supports: %w", err)
	}
	defer rows.Close()

	var supports []models.AiBuilderSupport
	for rows.Next() {
		var sp models.AiBuilderSupport
		if err := rows.Scan(&sp.ID, &sp.AiBuilderID, &sp.SupportType, &sp.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan support: %w", err)
		}
		supports = append(supports, sp)
	}
	return supports, rows.Err()
}

// CountByBuilder returns how many supports a builder has. Used by tests
// and the builder deletion flow to verify the cascade.
func (s *SupportStore) CountByBuilder(builderID int64) (int, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM ai_builder_supports WHERE ai_builder_id = $1
	`, builderID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count supports: %w", err)
	}
	return count, nil
}
