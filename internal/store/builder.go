package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"siteforge/internal/models"
)

// BuilderStore handles all ai_builders database operations, including
// the cascading delete of dependent rows.
type BuilderStore struct {
	db *sql.DB
}

// NewBuilderStore creates a new BuilderStore with the given database connection.
func NewBuilderStore(db *sql.DB) *BuilderStore {
	return &BuilderStore{db: db}
}

// Create inserts a new builder after checking the site title is unused.
// Returns ErrDuplicateTitle if the title is taken — either by the
// pre-check or, if a concurrent insert wins the race, by the UNIQUE
// constraint on site_title.
func (s *BuilderStore) Create(siteTitle string, brandID, fontID, colorID int64, userID uuid.UUID) (*models.AiBuilder, error) {
	var existing int64
	err := s.db.QueryRow(`
		SELECT ai_builder_id FROM ai_builders WHERE site_title = $1 LIMIT 1
	`, siteTitle).Scan(&existing)
	if err == nil {
		return nil, ErrDuplicateTitle
	}
	if err != sql.ErrNoRows {
		// Not-found is the expected outcome; anything else is fatal.
		return nil, fmt.Errorf("%w: %v", ErrTitleCheck, err)
	}

	now := jakartaNow()
	b := &models.AiBuilder{}
	err = s.db.QueryRow(`
		INSERT INTO ai_builders (site_title, brand_id, font_id, color_id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING ai_builder_id, site_title, brand_id, font_id, color_id, user_id, created_at, updated_at
	`, siteTitle, brandID, fontID, colorID, userID, now).Scan(
		&b.ID, &b.SiteTitle, &b.BrandID, &b.FontID, &b.ColorID, &b.UserID,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateTitle
		}
		return nil, fmt.Errorf("create builder: %w", err)
	}
	return b, nil
}

const builderDetailColumns = `
	b.ai_builder_id, b.site_title, b.brand_id, b.font_id, b.color_id, b.user_id,
	b.created_at, b.updated_at,
	br.brand_id, br.name, br.logo_url, br.created_at,
	f.font_id, f.name, f.family, f.created_at,
	c.color_id, c.name, c.value, c.created_at`

const builderDetailJoins = `
	FROM ai_builders b
	JOIN brands br ON br.brand_id = b.brand_id
	JOIN fonts f ON f.font_id = b.font_id
	JOIN colors c ON c.color_id = b.color_id`

// scanBuilderDetail reads one joined row into an AiBuilderDetail.
func scanBuilderDetail(rows *sql.Rows, withUser bool) (models.AiBuilderDetail, error) {
	var d models.AiBuilderDetail
	d.Brand = &models.Brand{}
	d.Font = &models.Font{}
	d.Color = &models.Color{}

	dest := []any{
		&d.ID, &d.SiteTitle, &d.BrandID, &d.FontID, &d.ColorID, &d.UserID,
		&d.CreatedAt, &d.UpdatedAt,
		&d.Brand.ID, &d.Brand.Name, &d.Brand.LogoURL, &d.Brand.CreatedAt,
		&d.Font.ID, &d.Font.Name, &d.Font.Family, &d.Font.CreatedAt,
		&d.Color.ID, &d.Color.Name, &d.Color.Value, &d.Color.CreatedAt,
	}
	if withUser {
		d.User = &models.User{}
		dest = append(dest,
			&d.User.ID, &d.User.Email, &d.User.RoleID, &d.User.IsVerified,
			&d.User.CreatedAt, &d.User.UpdatedAt,
		)
	}
	if err := rows.Scan(dest...); err != nil {
		return d, fmt.Errorf("scan builder: %w", err)
	}
	return d, nil
}

// ListAll returns every builder with brand, font, color and owning user
// expanded by foreign key.
func (s *BuilderStore) ListAll() ([]models.AiBuilderDetail, error) {
	rows, err := s.db.Query(`
		SELECT`+builderDetailColumns+`,
			u.id, u.email, u.role_id, u.is_verified, u.created_at, u.updated_at
		`+builderDetailJoins+`
		JOIN users u ON u.id = b.user_id
		ORDER BY b.ai_builder_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list builders: %w", err)
	}
	defer rows.Close()

	var builders []models.AiBuilderDetail
	for rows.Next() {
		d, err := scanBuilderDetail(rows, true)
		if err != nil {
			return nil, err
		}
		builders = append(builders, d)
	}
	return builders, rows.Err()
}

// ListByUser returns the builders owned by a user with brand, font and
// color expanded. An empty slice means the user has no builders yet.
func (s *BuilderStore) ListByUser(userID uuid.UUID) ([]models.AiBuilderDetail, error) {
	rows, err := s.db.Query(`
		SELECT`+builderDetailColumns+builderDetailJoins+`
		WHERE b.user_id = $1
		ORDER BY b.ai_builder_id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list builders by user: %w", err)
	}
	defer rows.Close()

	var builders []models.AiBuilderDetail
	for rows.Next() {
		d, err := scanBuilderDetail(rows, false)
		if err != nil {
			return nil, err
		}
		builders = append(builders, d)
	}
	return builders, rows.Err()
}

// GetByUser returns the builder matching both owner and id, expanded the
// same way as ListByUser. Empty result means no match.
func (s *BuilderStore) GetByUser(userID uuid.UUID, builderID int64) ([]models.AiBuilderDetail, error) {
	rows, err := s.db.Query(`
		SELECT`+builderDetailColumns+builderDetailJoins+`
		WHERE b.user_id = $1 AND b.ai_builder_id = $2
	`, userID, builderID)
	if err != nil {
		return nil, fmt.Errorf("get builder by user: %w", err)
	}
	defer rows.Close()

	var builders []models.AiBuilderDetail
	for rows.Next() {
		d, err := scanBuilderDetail(rows, false)
		if err != nil {
			return nil, err
		}
		builders = append(builders, d)
	}
	return builders, rows.Err()
}

// SiteTitle returns the site title for a builder id, or ("", nil) when
// the builder does not exist.
func (s *BuilderStore) SiteTitle(builderID int64) (string, error) {
	var title string
	err := s.db.QueryRow(`
		SELECT site_title FROM ai_builders WHERE ai_builder_id = $1
	`, builderID).Scan(&title)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("builder site title: %w", err)
	}
	return title, nil
}

// Delete removes a builder together with its dependent sections,
// supports and styles. Dependents go first, the builder row last, all
// inside one transaction so a failure leaves no partial deletion.
func (s *BuilderStore) Delete(builderID int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("delete builder begin: %w", err)
	}
	defer tx.Rollback()

	steps := []struct {
		name  string
		query string
	}{
		{"sections", "DELETE FROM ai_builder_sections WHERE ai_builder_id = $1"},
		{"styles", "DELETE FROM ai_builder_styles WHERE ai_builder_id = $1"},
		{"supports", "DELETE FROM ai_builder_supports WHERE ai_builder_id = $1"},
		{"builder", "DELETE FROM ai_builders WHERE ai_builder_id = $1"},
	}
	for _, step := range steps {
		if _, err := tx.Exec(step.query, builderID); err != nil {
			return fmt.Errorf("delete builder %s: %w", step.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("delete builder commit: %w", err)
	}
	return nil
}
