package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"siteforge/internal/models"
)

// UserStore handles all user-related database operations, including the
// email-verification state transitions.
type UserStore struct {
	db *sql.DB
}

// NewUserStore creates a new UserStore with the given database connection.
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

const userColumns = `id, email, password_hash, role_id, verification_code, is_verified, created_at, updated_at`

func scanUser(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.RoleID,
		&u.VerificationCode, &u.IsVerified, &u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// FindByEmail retrieves a user by their email address. Returns nil if not found.
func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	u, err := scanUser(s.db.QueryRow(`
		SELECT `+userColumns+` FROM users WHERE email = $1
	`, email))
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

// FindByID retrieves a user by their UUID. Returns nil if not found.
func (s *UserStore) FindByID(id uuid.UUID) (*models.User, error) {
	u, err := scanUser(s.db.QueryRow(`
		SELECT `+userColumns+` FROM users WHERE id = $1
	`, id))
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return u, nil
}

// Create inserts a new unverified user with a bcrypt-hashed password and
// a pending verification code. Returns ErrDuplicateEmail if the email
// is already registered.
func (s *UserStore) Create(email, password string, roleID uuid.UUID, verificationCode string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &models.User{}
	err = s.db.QueryRow(`
		INSERT INTO users (email, password_hash, role_id, verification_code)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns+`
	`, email, string(hash), roleID, verificationCode).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.RoleID,
		&u.VerificationCode, &u.IsVerified, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// CheckPassword verifies a plaintext password against the stored hash.
func (s *UserStore) CheckPassword(u *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// MarkVerified flips the user to verified and clears the code.
func (s *UserStore) MarkVerified(email string) error {
	_, err := s.db.Exec(`
		UPDATE users SET is_verified = TRUE, verification_code = NULL, updated_at = NOW()
		WHERE email = $1
	`, email)
	if err != nil {
		return fmt.Errorf("mark verified: %w", err)
	}
	return nil
}

// ClearVerificationCode removes the stored code without touching the
// verified flag. Used after a successful password-reset OTP check.
func (s *UserStore) ClearVerificationCode(email string) error {
	_, err := s.db.Exec(`
		UPDATE users SET verification_code = NULL, updated_at = NOW()
		WHERE email = $1
	`, email)
	if err != nil {
		return fmt.Errorf("clear verification code: %w", err)
	}
	return nil
}

// SetVerificationCode stores a fresh code for an existing user.
func (s *UserStore) SetVerificationCode(email, code string) error {
	_, err := s.db.Exec(`
		UPDATE users SET verification_code = $1, updated_at = NOW()
		WHERE email = $2
	`, code, email)
	if err != nil {
		return fmt.Errorf("set verification code: %w", err)
	}
	return nil
}
