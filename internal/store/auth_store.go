package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"eventsportal/internal/domain"
	"eventsportal/internal/i18n"
	"eventsportal/internal/usecase"
)

// AuthState is a snapshot of the auth store.
type AuthState struct {
	Session         *domain.Session
	IsAuthenticated bool
	IsLoading       bool
	Error           string
}

// AuthStore holds the authenticated session.
type AuthStore struct {
	mu        sync.Mutex
	state     AuthState
	uc        usecase.AuthUseCases
	persister domain.SessionPersister
	logger    *slog.Logger
	listeners listeners[AuthState]
}

// NewAuthStore returns a store driving uc. When persister is non-nil a stored,
// unexpired session is restored immediately and later logins/logouts are saved.
func NewAuthStore(uc usecase.AuthUseCases, persister domain.SessionPersister, logger *slog.Logger) *AuthStore {
	s := &AuthStore{
		uc:        uc,
		persister: persister,
		logger:    orDiscard(logger),
	}
	s.restore()
	return s
}

func (s *AuthStore) restore() {
	if s.persister == nil {
		return
	}
	session, err := s.persister.Load()
	if err != nil {
		s.logger.Warn("failed to load stored session", "err", err)
		return
	}
	if !session.Valid(time.Now()) {
		return
	}
	s.state.Session = session
	s.state.IsAuthenticated = true
}

// State returns a copy of the current state.
func (s *AuthStore) State() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Subscribe registers fn to receive every new state. The returned func unsubscribes.
func (s *AuthStore) Subscribe(fn func(AuthState)) func() {
	return s.listeners.add(fn)
}

// Token returns the bearer token of a live session, or "". Safe on a nil store.
func (s *AuthStore) Token() string {
	if s == nil {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.Session.Valid(time.Now()) {
		return ""
	}
	return s.state.Session.Token
}

func (s *AuthStore) snapshot() AuthState {
	st := s.state
	if s.state.Session != nil {
		sess := *s.state.Session
		st.Session = &sess
	}
	return st
}

func (s *AuthStore) update(fn func(st *AuthState)) {
	s.mu.Lock()
	fn(&s.state)
	snap := s.snapshot()
	s.mu.Unlock()
	s.listeners.notify(snap)
}

func (s *AuthStore) fail(ctx context.Context, action string, err error, fallback string) {
	msg := errorMessage(err, fallback)
	s.logger.WarnContext(ctx, "auth action failed", "action", action, "err", err)
	s.update(func(st *AuthState) {
		st.IsLoading = false
		st.Error = msg
	})
}

// Login authenticates and stores the session.
func (s *AuthStore) Login(ctx context.Context, c domain.Credentials) error {
	s.update(func(st *AuthState) {
		st.IsLoading = true
		st.Error = ""
	})

	session, err := s.uc.Login.Execute(ctx, c)
	if err != nil {
		s.fail(ctx, "login", err, i18n.MsgFailedLogin)
		return err
	}
	if s.persister != nil {
		if err := s.persister.Save(session); err != nil {
			s.logger.WarnContext(ctx, "failed to persist session", "err", err)
		}
	}
	s.update(func(st *AuthState) {
		st.Session = session
		st.IsAuthenticated = true
		st.IsLoading = false
	})
	return nil
}

// Register creates an account. The session is left as it was.
func (s *AuthStore) Register(ctx context.Context, r domain.Registration) (*domain.User, error) {
	s.update(func(st *AuthState) {
		st.IsLoading = true
		st.Error = ""
	})

	user, err := s.uc.Register.Execute(ctx, r)
	if err != nil {
		s.fail(ctx, "register", err, i18n.MsgFailedRegistration)
		return nil, err
	}
	s.update(func(st *AuthState) { st.IsLoading = false })
	return user, nil
}

// Logout drops the session immediately. No request is sent.
func (s *AuthStore) Logout() {
	if s.persister != nil {
		if err := s.persister.Clear(); err != nil {
			s.logger.Warn("failed to clear stored session", "err", err)
		}
	}
	s.update(func(st *AuthState) {
		st.Session = nil
		st.IsAuthenticated = false
		st.IsLoading = false
		st.Error = ""
	})
}

// ClearError drops the current error message.
func (s *AuthStore) ClearError() {
	s.update(func(st *AuthState) { st.Error = "" })
}
