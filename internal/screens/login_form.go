package screens

import (
	"context"

	"eventsportal/internal/domain"
	"eventsportal/internal/validation"
)

// LoginForm is the state of the login screen.
type LoginForm struct {
	auth *Auth

	Email            string
	Password         string
	ShowPassword     bool
	ValidationErrors validation.FieldErrors
}

func NewLoginForm(auth *Auth) *LoginForm {
	return &LoginForm{auth: auth, ValidationErrors: validation.FieldErrors{}}
}

// TogglePassword flips password visibility.
func (f *LoginForm) TogglePassword() { f.ShowPassword = !f.ShowPassword }

// Submit logs in with the entered credentials. Missing fields are reported
// without contacting the API.
func (f *LoginForm) Submit(ctx context.Context) error {
	f.ValidationErrors = validation.Login(f.Email, f.Password)
	if err := f.ValidationErrors.Err(); err != nil {
		return err
	}
	return f.auth.Login(ctx, domain.Credentials{Email: f.Email, Password: f.Password})
}
