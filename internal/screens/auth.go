package screens

import (
	"context"

	"eventsportal/internal/domain"
	"eventsportal/internal/i18n"
	"eventsportal/internal/store"
)

// Auth wires the auth store to navigation: login leads to the events list,
// registration and logout lead to the login screen.
type Auth struct {
	store  *store.AuthStore
	nav    Navigator
	notify Notifier
	text   *i18n.Catalog
}

func NewAuth(s *store.AuthStore, nav Navigator, notify Notifier, text *i18n.Catalog) *Auth {
	return &Auth{store: s, nav: nav, notify: notify, text: text}
}

// State exposes the store snapshot.
func (a *Auth) State() store.AuthState { return a.store.State() }

// Login clears any previous error and logs in. On failure the store keeps the message.
func (a *Auth) Login(ctx context.Context, c domain.Credentials) error {
	a.store.ClearError()
	if err := a.store.Login(ctx, c); err != nil {
		return err
	}
	if st := a.store.State(); st.Session != nil && st.Session.User.Name != "" {
		a.notify.Success(a.text.T(i18n.MsgWelcome, st.Session.User.Name))
	}
	a.nav.Navigate(RouteEvents)
	return nil
}

// Register creates the account and sends the user to the login screen.
func (a *Auth) Register(ctx context.Context, r domain.Registration) error {
	a.store.ClearError()
	if _, err := a.store.Register(ctx, r); err != nil {
		return err
	}
	a.notify.Success(a.text.T(i18n.MsgRegistered))
	a.nav.Navigate(RouteLogin)
	return nil
}

// Logout drops the session and returns to the login screen.
func (a *Auth) Logout() {
	a.store.Logout()
	a.notify.Success(a.text.T(i18n.MsgLoggedOut))
	a.nav.Navigate(RouteLogin)
}

// ClearError drops the store error.
func (a *Auth) ClearError() { a.store.ClearError() }
