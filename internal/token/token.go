// Package token provides Valkey-backed bearer token management.
// Tokens are opaque random identifiers presented in the Authorization
// header and stored as JSON in Valkey with automatic TTL expiry.
package token

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// DefaultTTL is how long a token lives in Valkey before automatic expiry.
	DefaultTTL = 24 * time.Hour

	// keyPrefix namespaces token keys in Valkey to avoid collisions.
	keyPrefix = "token:"

	// idLength is the byte length of the random token (32 bytes = 64 hex chars).
	idLength = 32
)

// Identity is the payload stored in Valkey for a bearer token. It
// carries what the authorization layer needs about the caller.
type Identity struct {
	UserID   uuid.UUID `json:"user_id"`
	RoleID   uuid.UUID `json:"role_id"`
	Email    string    `json:"email"`
	IssuedAt time.Time `json:"issued_at"`
}

// Store manages bearer token lifecycle in Valkey.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// Connect creates a Valkey client and verifies the connection with a ping.
func Connect(addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("valkey ping: %w", err)
	}

	slog.Info("valkey connected", "addr", addr)
	return client, nil
}

// NewStore creates a token store backed by the given Valkey client.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
		ttl:    DefaultTTL,
	}
}

// Issue generates a new token for the identity and stores it in Valkey.
func (s *Store) Issue(ctx context.Context, id *Identity) (string, error) {
	tok, err := generateToken()
	if err != nil {
		return "", fmt.Errorf("token issue: %w", err)
	}

	id.IssuedAt = time.Now()

	payload, err := json.Marshal(id)
	if err != nil {
		return "", fmt.Errorf("token marshal: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+tok, payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("token store: %w", err)
	}

	return tok, nil
}

// Get looks up the identity for a bearer token. Returns nil if the
// token is unknown or expired.
func (s *Store) Get(ctx context.Context, tok string) (*Identity, error) {
	payload, err := s.client.Get(ctx, keyPrefix+tok).Bytes()
	if err == redis.Nil {
		return nil, nil // Expired or never issued
	}
	if err != nil {
		return nil, fmt.Errorf("token get: %w", err)
	}

	var id Identity
	if err := json.Unmarshal(payload, &id); err != nil {
		return nil, fmt.Errorf("token unmarshal: %w", err)
	}

	return &id, nil
}

// Revoke removes a token from Valkey.
func (s *Store) Revoke(ctx context.Context, tok string) error {
	if err := s.client.Del(ctx, keyPrefix+tok).Err(); err != nil {
		return fmt.Errorf("token revoke: %w", err)
	}
	return nil
}

// FromRequest extracts the bearer token from the Authorization header.
// Returns "" when the header is absent or malformed.
func FromRequest(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}

// generateToken creates a cryptographically random token identifier.
func generateToken() (string, error) {
	b := make([]byte, idLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
