package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"siteforge/internal/models"
)

// SectionStore handles ai_builder_sections database operations.
type SectionStore struct {
	db *sql.DB
}

// NewSectionStore creates a new SectionStore with the given database connection.
func NewSectionStore(db *sql.DB) *SectionStore {
	return &SectionStore{db: db}
}

// Create inserts a builder section with server-set timestamps.
func (s *SectionStore) Create(styleDesign string, sectionID, pageID, builderID int64, supportID *int64) (*models.AiBuilderSection, error) {
	now := jakartaNow()
	sec := &models.AiBuilderSection{}
	var userID uuid.NullUUID
	err := s.db.QueryRow(`
		INSERT INTO ai_builder_sections (style_design, section_id, page_id, ai_builder_id, ai_builder_support_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id, style_design, section_id, page_id, ai_builder_id, ai_builder_support_id, user_id, created_at, updated_at
	`, styleDesign, sectionID, pageID, builderID, supportID, now).Scan(
		&sec.ID, &sec.StyleDesign, &sec.SectionID, &sec.PageID,
		&sec.AiBuilderID, &sec.SupportID, &userID, &sec.CreatedAt, &sec.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create builder section: %w", err)
	}
	if userID.Valid {
		sec.UserID = &userID.UUID
	}
	return sec, nil
}

// List returns every builder section with section, page, user and
// support relations expanded.
func (s *SectionStore) List() ([]models.AiBuilderSectionDetail, error) {
	rows, err := s.db.Query(`
		SELECT
			bs.id, bs.style_design, bs.section_id, bs.page_id, bs.ai_builder_id,
			bs.ai_builder_support_id, bs.user_id, bs.created_at, bs.updated_at,
			sec.section_id, sec.name, sec.created_at,
			p.page_id, p.name, p.created_at,
			u.id, u.email, u.role_id, u.is_verified, u.created_at, u.updated_at,
			sp.ai_builder_support_id, sp.ai_builder_id, sp.support_type, sp.created_at
		FROM ai_builder_sections bs
		JOIN sections sec ON sec.section_id = bs.section_id
		JOIN pages p ON p.page_id = bs.page_id
		LEFT JOIN users u ON u.id = bs.user_id
		LEFT JOIN ai_builder_supports sp ON sp.ai_builder_support_id = bs.ai_builder_support_id
		ORDER BY bs.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list builder sections: %w", err)
	}
	defer rows.Close()

	var sections []models.AiBuilderSectionDetail
	for rows.Next() {
		var d models.AiBuilderSectionDetail
		d.Section = &models.Section{}
		d.Page = &models.Page{}

		var (
			ownUserID  uuid.NullUUID
			userID     uuid.NullUUID
			userEmail  sql.NullString
			userRole   uuid.NullUUID
			userVerif  sql.NullBool
			userCreate sql.NullTime
			userUpdate sql.NullTime

			spID      sql.NullInt64
			spBuilder sql.NullInt64
			spType    sql.NullString
			spCreated sql.NullString
		)

		if err := rows.Scan(
			&d.ID, &d.StyleDesign, &d.SectionID, &d.PageID, &d.AiBuilderID,
			&d.SupportID, &ownUserID, &d.CreatedAt, &d.UpdatedAt,
			&d.Section.ID, &d.Section.Name, &d.Section.CreatedAt,
			&d.Page.ID, &d.Page.Name, &d.Page.CreatedAt,
			&userID, &userEmail, &userRole, &userVerif, &userCreate, &userUpdate,
			&spID, &spBuilder, &spType, &spCreated,
		); err != nil {
			return nil, fmt.Errorf("scan builder section: %w", err)
		}

		if ownUserID.Valid {
			d.UserID = &ownUserID.UUID
		}
		if userID.Valid {
			d.User = &models.User{
				ID:         userID.UUID,
				Email:      userEmail.String,
				RoleID:     userRole.UUID,
				IsVerified: userVerif.Bool,
				CreatedAt:  userCreate.Time,
				UpdatedAt:  userUpdate.Time,
			}
		}
		if spID.Valid {
			d.Support = &models.AiBuilderSupport{
				ID:          spID.Int64,
				AiBuilderID: spBuilder.Int64,
				SupportType: spType.String,
				CreatedAt:   spCreated.String,
			}
		}

		sections = append(sections, d)
	}
	return sections, rows.Err()
}

// CountByBuilder returns how many sections reference a builder.
func (s *SectionStore) CountByBuilder(builderID int64) (int, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM ai_builder_sections WHERE ai_builder_id = $1
	`, builderID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count builder sections: %w", err)
	}
	return count, nil
}
