package app

import (
	"regexp"
	"strings"
	"unicode"
)

// Field-level validation for the sign-up and login forms. The rules are pure;
// the uniqueness checks are injected as lookups so the forms can be validated
// without touching storage.

// SignUpForm is the raw sign-up input prior to validation.
type SignUpForm struct {
	FirstName       string
	Surname         string
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
}

// LoginForm is the raw login input prior to validation.
type LoginForm struct {
	Identifier string
	Password   string
}

// Lookups are the storage capabilities the sign-up rules need. Both report
// whether the value is already registered.
type Lookups struct {
	UsernameTaken func(username string) bool
	EmailTaken    func(email string) bool
}

// Email must have a local part, a domain, and a 2-4 character TLD.
var emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,4}$`)

const passwordSpecials = `!@#$%^&*()_+-={}';:"\|,.<>/?~[]`

// ValidateSignUp applies every sign-up rule and returns field-keyed error
// messages. An empty map means the form is acceptable. Messages are surfaced
// to the caller, never raised as errors.
func ValidateSignUp(form SignUpForm, lookups Lookups) map[string]string {
	errs := make(map[string]string)

	switch {
	case form.FirstName == "":
		errs["firstName"] = "Required"
	case len(form.FirstName) > 15:
		errs["firstName"] = "Must be 15 characters or less"
	}

	switch {
	case form.Surname == "":
		errs["surname"] = "Required"
	case len(form.Surname) > 20:
		errs["surname"] = "Must be 20 characters or less"
	}

	switch {
	case form.Username == "":
		errs["username"] = "Required"
	case len(form.Username) < 7:
		errs["username"] = "Must be 7 characters or more"
	case strings.ContainsFunc(form.Username, unicode.IsSpace):
		errs["username"] = "Must be a single word (no spaces)"
	case lookups.UsernameTaken != nil && lookups.UsernameTaken(form.Username):
		errs["username"] = "Username already taken. Please choose another."
	}

	switch {
	case form.Email == "":
		errs["email"] = "Required"
	case !emailPattern.MatchString(form.Email):
		errs["email"] = "Invalid email address"
	case lookups.EmailTaken != nil && lookups.EmailTaken(form.Email):
		errs["email"] = "Email already registered. Please use a different email."
	}

	if msg := validatePassword(form.Password); msg != "" {
		errs["password"] = msg
	}

	switch {
	case form.PasswordConfirm == "":
		errs["passwordConfirm"] = "Required"
	case form.PasswordConfirm != form.Password:
		errs["passwordConfirm"] = "Passwords must match"
	}

	return errs
}

// ValidateLogin checks the login form for presence only; credential checking
// is the engine's job.
func ValidateLogin(form LoginForm) map[string]string {
	errs := make(map[string]string)
	if form.Identifier == "" {
		errs["identifier"] = "Required"
	}
	if form.Password == "" {
		errs["password"] = "Required"
	}
	return errs
}

func validatePassword(password string) string {
	switch {
	case password == "":
		return "Required"
	case len(password) < 8:
		return "Must be 8 characters or more"
	case !strings.ContainsFunc(password, unicode.IsUpper):
		return "Must contain at least one uppercase letter"
	case !strings.ContainsFunc(password, unicode.IsLower):
		return "Must contain at least one lowercase letter"
	case !strings.ContainsFunc(password, unicode.IsDigit):
		return "Must contain at least one number"
	case !strings.ContainsAny(password, passwordSpecials):
		return "Must contain at least one special character"
	}
	return ""
}
