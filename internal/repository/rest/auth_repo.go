package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"eventsportal/internal/adapters/auth"
	"eventsportal/internal/adapters/httpclient"
	"eventsportal/internal/domain"
)

type authRepository struct {
	client *httpclient.Client
}

// NewAuthRepository returns an AuthRepository backed by /auth/login and /auth/register.
func NewAuthRepository(client *httpclient.Client) domain.AuthRepository {
	return &authRepository{client: client}
}

// loginResponse tolerates the token spellings APIs commonly use.
type loginResponse struct {
	Token            string       `json:"token"`
	AccessToken      string       `json:"accessToken"`
	AccessTokenSnake string       `json:"access_token"`
	User             *domain.User `json:"user"`
}

func (l loginResponse) token() string {
	switch {
	case l.Token != "":
		return l.Token
	case l.AccessToken != "":
		return l.AccessToken
	}
	return l.AccessTokenSnake
}

func (r *authRepository) Login(ctx context.Context, c domain.Credentials) (*domain.Session, error) {
	raw, err := r.client.Post(ctx, "/auth/login", c)
	if err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}
	body, err := unwrapData(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}
	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}
	token := resp.token()
	if token == "" {
		return nil, errors.New("login response carried no token")
	}

	session, err := auth.SessionFromToken(token)
	if err != nil {
		// Opaque tokens are fine; identity then comes from the response body only.
		session = &domain.Session{Token: token}
	}
	if resp.User != nil {
		session.User = *resp.User
	}
	if session.User.Email == "" {
		session.User.Email = c.Email
	}
	return session, nil
}

func (r *authRepository) Register(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	raw, err := r.client.Post(ctx, "/auth/register", reg)
	if err != nil {
		return nil, fmt.Errorf("failed to register: %w", err)
	}
	user := &domain.User{}
	if len(raw) > 0 {
		body, err := unwrapData(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decode register response: %w", err)
		}
		if err := json.Unmarshal(body, user); err != nil {
			return nil, fmt.Errorf("failed to decode register response: %w", err)
		}
	}
	if user.Name == "" {
		user.Name = reg.Name
	}
	if user.Email == "" {
		user.Email = reg.Email
	}
	return user, nil
}
