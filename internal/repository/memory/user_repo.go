package memory

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"eventsportal/internal/domain"
)

type userRepository struct {
	mu      sync.RWMutex
	nextID  int
	byEmail map[string]domain.StoredUser
}

// NewUserRepository returns an empty UserStorage. Emails are matched case-insensitively.
func NewUserRepository() domain.UserStorage {
	return &userRepository{nextID: 1, byEmail: make(map[string]domain.StoredUser)}
}

func (r *userRepository) Create(ctx context.Context, u *domain.StoredUser) error {
	key := strings.ToLower(u.Email)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[key]; ok {
		return domain.ErrDuplicateEmail
	}
	u.ID = strconv.Itoa(r.nextID)
	r.nextID++
	r.byEmail[key] = *u
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.StoredUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}
