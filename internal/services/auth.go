package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventsportal/internal/domain"
	"eventsportal/internal/validation"
)

type authService struct {
	users     domain.UserStorage
	hasher    domain.PasswordHasher
	issuer    domain.TokenIssuer
	jwtExpiry time.Duration
}

// NewAuthService creates an AuthService over the given storage and token config.
func NewAuthService(users domain.UserStorage, hasher domain.PasswordHasher, issuer domain.TokenIssuer, jwtExpiry time.Duration) domain.AuthService {
	return &authService{
		users:     users,
		hasher:    hasher,
		issuer:    issuer,
		jwtExpiry: jwtExpiry,
	}
}

// Register applies the client's sign-up rules, so a request that passes the
// form also passes here. Validation failures are returned as validation.FieldErrors.
func (s *authService) Register(ctx context.Context, r domain.Registration) (*domain.User, error) {
	name := strings.TrimSpace(r.Name)
	email := strings.TrimSpace(strings.ToLower(r.Email))
	if err := validation.Registration(name, email, r.Password).Err(); err != nil {
		return nil, err
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(salt, r.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	stored := &domain.StoredUser{
		User:         domain.User{Name: name, Email: email},
		PasswordHash: hash,
		Salt:         salt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, stored); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	user := stored.User
	return &user, nil
}

func (s *authService) Login(ctx context.Context, c domain.Credentials) (string, *domain.User, error) {
	stored, err := s.users.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(c.Email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to load user: %w", err)
	}
	if err := s.hasher.Compare(stored.PasswordHash, stored.Salt, c.Password); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(stored.User, s.jwtExpiry)
	if err != nil {
		return "", nil, err
	}
	user := stored.User
	return token, &user, nil
}
