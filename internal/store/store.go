// Package store provides database access methods for all SiteForge
// entities. Each store struct wraps a *sql.DB and exposes typed query methods.
package store

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for domain conditions callers branch on.
var (
	// ErrDuplicateTitle is returned when a builder's site title is taken.
	ErrDuplicateTitle = errors.New("site title already exists")

	// ErrDuplicateEmail is returned when a user email is taken.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrTitleCheck is returned when the site-title uniqueness pre-check
	// itself fails, as opposed to the insert that follows it.
	ErrTitleCheck = errors.New("site title check failed")
)

// timeLayout is the civil timestamp format used for builder-domain rows.
const timeLayout = "2006-01-02 15:04:05"

// jakarta is the fixed WIB (UTC+7) zone used for builder timestamps.
// Asia/Jakarta has no DST, so the fallback zone is equivalent when the
// system tzdata is missing.
var jakarta = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}()

// jakartaNow returns the current Asia/Jakarta civil time as a
// "YYYY-MM-DD HH:mm:ss" string.
func jakartaNow() string {
	return time.Now().In(jakarta).Format(timeLayout)
}

// isUniqueViolation reports whether err is a PostgreSQL unique
// constraint violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
