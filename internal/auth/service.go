// Package auth implements the authorization guard: user registration and
// login against the users table, with bcrypt password hashing and session
// tokens stored in Redis under a TTL.
//
// Domain handlers consume only the Guard interface — a per-request
// identity with an elevated-privilege flag.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"jobboard/api-service/internal/apperr"
	"jobboard/api-service/internal/db"
)

// ErrUnauthorized is returned when a credential is missing, expired or
// does not match.
var ErrUnauthorized = errors.New("invalid or missing credentials")

// Identity is the resolved caller: who they are and whether they may
// mutate.
type Identity struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Guard resolves an inbound request to an Identity. The domain handlers
// depend on this interface, not on the concrete Service.
type Guard interface {
	Identify(ctx context.Context, r *http.Request) (*Identity, error)
}

// RegisterParams holds the fields required to create a user.
type RegisterParams struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Service implements registration, login and the Guard.
type Service struct {
	db  db.Querier
	rdb *redis.Client
	ttl time.Duration
}

// NewService returns a configured Service. ttl bounds session lifetime.
func NewService(q db.Querier, rdb *redis.Client, ttl time.Duration) *Service {
	return &Service{db: q, rdb: rdb, ttl: ttl}
}

// Register creates a non-admin user and issues a session token. A taken
// username fails with Conflict; like the company create, the pre-check
// only shapes the error and the primary key remains the real guard.
func (s *Service) Register(ctx context.Context, p RegisterParams) (*Identity, string, error) {
	var existing string
	err := s.db.QueryRow(ctx,
		`SELECT username FROM users WHERE username = $1`, p.Username,
	).Scan(&existing)
	switch {
	case err == nil:
		return nil, "", apperr.Conflict("username taken: %s", p.Username)
	case !errors.Is(err, pgx.ErrNoRows):
		return nil, "", fmt.Errorf("register pre-check: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO users (username, password_hash, first_name, last_name, email, is_admin)
		 VALUES ($1, $2, $3, $4, $5, FALSE)`,
		p.Username, string(hash), p.FirstName, p.LastName, p.Email,
	)
	if err != nil {
		return nil, "", fmt.Errorf("register insert: %w", err)
	}

	id := &Identity{Username: p.Username, IsAdmin: false}
	token, err := s.issueToken(ctx, id)
	if err != nil {
		return nil, "", err
	}
	return id, token, nil
}

// Login verifies a username/password pair and issues a session token.
// A missing user and a wrong password both come back as ErrUnauthorized.
func (s *Service) Login(ctx context.Context, username, password string) (*Identity, string, error) {
	var (
		hash    string
		isAdmin bool
	)
	err := s.db.QueryRow(ctx,
		`SELECT password_hash, is_admin FROM users WHERE username = $1`, username,
	).Scan(&hash, &isAdmin)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, "", ErrUnauthorized
	}
	if err != nil {
		return nil, "", fmt.Errorf("login lookup: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, "", ErrUnauthorized
	}

	id := &Identity{Username: username, IsAdmin: isAdmin}
	token, err := s.issueToken(ctx, id)
	if err != nil {
		return nil, "", err
	}
	return id, token, nil
}

// Identify implements Guard: it resolves the bearer token on r to the
// session identity stored in Redis.
func (s *Service) Identify(ctx context.Context, r *http.Request) (*Identity, error) {
	token := BearerToken(r)
	if token == "" {
		return nil, ErrUnauthorized
	}

	raw, err := s.rdb.Get(ctx, sessionKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("session lookup: %w", err)
	}

	var id Identity
	if err := json.Unmarshal(raw, &id); err != nil {
		return nil, fmt.Errorf("session decode: %w", err)
	}
	return &id, nil
}

func (s *Service) issueToken(ctx context.Context, id *Identity) (string, error) {
	token := uuid.NewString()
	payload, err := json.Marshal(id)
	if err != nil {
		return "", fmt.Errorf("session encode: %w", err)
	}
	if err := s.rdb.Set(ctx, sessionKey(token), payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("session store: %w", err)
	}
	return token, nil
}

func sessionKey(token string) string {
	return "session:" + token
}

// BearerToken extracts the credential from an Authorization Bearer header,
// returning "" when absent or malformed.
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(h) > len(prefix) && strings.EqualFold(h[:len(prefix)], prefix) {
		return strings.TrimSpace(h[len(prefix):])
	}
	return ""
}
