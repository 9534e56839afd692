package screens

import (
	"context"

	"eventsportal/internal/domain"
	"eventsportal/internal/validation"
)

// RegisterForm is the state of the sign-up screen. After the first submit
// attempt the password is re-checked on every change.
type RegisterForm struct {
	auth *Auth

	Name             string
	Email            string
	password         string
	ShowPassword     bool
	ValidationErrors validation.FieldErrors
	attempted        bool
}

func NewRegisterForm(auth *Auth) *RegisterForm {
	return &RegisterForm{auth: auth, ValidationErrors: validation.FieldErrors{}}
}

// Password returns the entered password.
func (f *RegisterForm) Password() string { return f.password }

// SetPassword stores the password and, once a submit was attempted, refreshes its error.
func (f *RegisterForm) SetPassword(pwd string) {
	f.password = pwd
	if !f.attempted {
		return
	}
	if msg := validation.Password(pwd); msg != "" {
		f.ValidationErrors[validation.FieldPassword] = msg
	} else {
		delete(f.ValidationErrors, validation.FieldPassword)
	}
}

// TogglePassword flips password visibility.
func (f *RegisterForm) TogglePassword() { f.ShowPassword = !f.ShowPassword }

// Submit validates every field and registers when all pass.
func (f *RegisterForm) Submit(ctx context.Context) error {
	f.auth.ClearError()
	f.attempted = true
	f.ValidationErrors = validation.Registration(f.Name, f.Email, f.password)
	if err := f.ValidationErrors.Err(); err != nil {
		return err
	}
	return f.auth.Register(ctx, domain.Registration{Name: f.Name, Email: f.Email, Password: f.password})
}
