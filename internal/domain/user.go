package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"time"
)

// User is an authenticated identity as returned by the API.
// swagger:model User
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UnmarshalJSON accepts the id as either a JSON string or a number.
func (u *User) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID    json.RawMessage `json:"id"`
		Name  string          `json:"name"`
		Email string          `json:"email"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	u.Name, u.Email = raw.Name, raw.Email
	u.ID = string(bytes.Trim(raw.ID, `"`))
	if u.ID == "null" {
		u.ID = ""
	}
	return nil
}

// Credentials are submitted on login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is submitted on sign-up.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the client's authenticated state between login and logout.
type Session struct {
	Token     string    `json:"token" yaml:"token"`
	User      User      `json:"user" yaml:"user"`
	ExpiresAt time.Time `json:"expiresAt" yaml:"expires_at"`
}

// Valid reports whether the session carries a token that has not expired at now.
// A zero ExpiresAt never expires.
func (s *Session) Valid(now time.Time) bool {
	if s == nil || s.Token == "" {
		return false
	}
	return s.ExpiresAt.IsZero() || now.Before(s.ExpiresAt)
}

// AuthRepository is the client-side contract for the remote auth endpoints.
type AuthRepository interface {
	Login(ctx context.Context, c Credentials) (*Session, error)
	Register(ctx context.Context, r Registration) (*User, error)
}

// SessionPersister keeps a session across process runs.
// Load returns (nil, nil) when nothing is stored.
type SessionPersister interface {
	Load() (*Session, error)
	Save(s *Session) error
	Clear() error
}

// StoredUser is a mock API account record.
type StoredUser struct {
	User
	PasswordHash string
	Salt         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(user User, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// UserStorage persists mock API accounts.
type UserStorage interface {
	Create(ctx context.Context, u *StoredUser) error
	GetByEmail(ctx context.Context, email string) (*StoredUser, error)
}

// AuthService is the mock API's sign-up and login logic.
type AuthService interface {
	Register(ctx context.Context, r Registration) (*User, error)
	Login(ctx context.Context, c Credentials) (token string, user *User, err error)
}
