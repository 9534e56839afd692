// Package validation holds the client-side form rules checked before any
// request is sent. Messages are English catalog keys; screens translate them.
package validation

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Messages. They double as keys of the i18n catalog.
const (
	MsgNameRequired      = "Name is required"
	MsgEmailRequired     = "Email is required"
	MsgEmailInvalid      = "Email is invalid"
	MsgPasswordRequired  = "Password is required"
	MsgPasswordTooShort  = "Password must be at least 8 characters"
	MsgPasswordUppercase = "Password must contain at least one uppercase letter"
	MsgPasswordDigit     = "Password must contain at least one number"
	MsgPasswordSpecial   = "Password must contain at least one special character (@$!%*?&)"
	MsgDateRequired      = "Date is required"
	MsgDateInvalid       = "Date is invalid"
)

// Form field names.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldDate        = "date"
	FieldDescription = "description"
	FieldPlace       = "place"
)

const minPasswordLen = 8

var (
	emailRegexp     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	uppercaseRegexp = regexp.MustCompile(`[A-Z]`)
	digitRegexp     = regexp.MustCompile(`\d`)
	specialRegexp   = regexp.MustCompile(`[@$!%*?&]`)
)

// FieldErrors maps a form field to its message. An empty map means valid.
type FieldErrors map[string]string

// Error implements error, listing the failures in field order.
func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + fe[f]
	}
	return strings.Join(parts, "; ")
}

// Err returns fe as an error, or nil when it is empty.
func (fe FieldErrors) Err() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

// Password returns the message of the first rule pwd breaks, or "" when it satisfies all of them.
func Password(pwd string) string {
	switch {
	case utf8.RuneCountInString(pwd) < minPasswordLen:
		return MsgPasswordTooShort
	case !uppercaseRegexp.MatchString(pwd):
		return MsgPasswordUppercase
	case !digitRegexp.MatchString(pwd):
		return MsgPasswordDigit
	case !specialRegexp.MatchString(pwd):
		return MsgPasswordSpecial
	}
	return ""
}

// Email returns the message for a missing or malformed address, or "".
func Email(email string) string {
	if strings.TrimSpace(email) == "" {
		return MsgEmailRequired
	}
	if !emailRegexp.MatchString(email) {
		return MsgEmailInvalid
	}
	return ""
}

// Registration checks the sign-up form.
func Registration(name, email, password string) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(name) == "" {
		errs[FieldName] = MsgNameRequired
	}
	if msg := Email(email); msg != "" {
		errs[FieldEmail] = msg
	}
	if msg := Password(password); msg != "" {
		errs[FieldPassword] = msg
	}
	return errs
}

// Login checks that both credentials are present.
func Login(email, password string) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(email) == "" {
		errs[FieldEmail] = MsgEmailRequired
	}
	if password == "" {
		errs[FieldPassword] = MsgPasswordRequired
	}
	return errs
}

// EventForm checks the create/edit form. Description and place are optional.
func EventForm(name, date string) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(name) == "" {
		errs[FieldName] = MsgNameRequired
	}
	if date == "" {
		errs[FieldDate] = MsgDateRequired
	}
	return errs
}
