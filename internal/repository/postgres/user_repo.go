package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"eventsportal/internal/domain"
)

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) domain.UserStorage {
	return &userRepository{DB: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.StoredUser) error {
	query := `
		INSERT INTO users (email, password_hash, salt, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id::text
	`
	err := r.DB.QueryRowContext(ctx, query, strings.ToLower(u.Email), u.PasswordHash, u.Salt, u.Name, u.CreatedAt, u.UpdatedAt).Scan(&u.ID)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateEmail
	}
	return err
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.StoredUser, error) {
	query := `
		SELECT id::text, email, password_hash, salt, name, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	u := &domain.StoredUser{}
	err := r.DB.QueryRowContext(ctx, query, strings.ToLower(email)).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Salt, &u.Name, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}
