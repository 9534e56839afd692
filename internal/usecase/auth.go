package usecase

import (
	"context"

	"eventsportal/internal/domain"
)

// Login exchanges credentials for a session.
type Login struct {
	repo domain.AuthRepository
}

func NewLogin(repo domain.AuthRepository) *Login {
	return &Login{repo: repo}
}

func (uc *Login) Execute(ctx context.Context, c domain.Credentials) (*domain.Session, error) {
	return uc.repo.Login(ctx, c)
}

// Register creates an account. It does not log the user in.
type Register struct {
	repo domain.AuthRepository
}

func NewRegister(repo domain.AuthRepository) *Register {
	return &Register{repo: repo}
}

func (uc *Register) Execute(ctx context.Context, r domain.Registration) (*domain.User, error) {
	return uc.repo.Register(ctx, r)
}

// AuthUseCases bundles the auth operations a store needs.
type AuthUseCases struct {
	Login    *Login
	Register *Register
}

// NewAuthUseCases wires every auth use-case to repo.
func NewAuthUseCases(repo domain.AuthRepository) AuthUseCases {
	return AuthUseCases{
		Login:    NewLogin(repo),
		Register: NewRegister(repo),
	}
}
