package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validForm() SignUpForm {
	return SignUpForm{
		FirstName:       "Alice",
		Surname:         "Liddell",
		Username:        "wonderalice",
		Email:           "alice@example.com",
		Password:        "Sup3r$ecret",
		PasswordConfirm: "Sup3r$ecret",
	}
}

func TestValidateSignUp(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*SignUpForm)
		lookups   Lookups
		wantField string
		wantMsg   string
	}{
		{"missing first name", func(f *SignUpForm) { f.FirstName = "" }, Lookups{}, "firstName", "Required"},
		{"first name too long", func(f *SignUpForm) { f.FirstName = "Wolfeschlegelstein" }, Lookups{}, "firstName", "Must be 15 characters or less"},
		{"missing surname", func(f *SignUpForm) { f.Surname = "" }, Lookups{}, "surname", "Required"},
		{"surname too long", func(f *SignUpForm) { f.Surname = "Wolfeschlegelsteinhausen" }, Lookups{}, "surname", "Must be 20 characters or less"},
		{"username too short", func(f *SignUpForm) { f.Username = "alice" }, Lookups{}, "username", "Must be 7 characters or more"},
		{"username with spaces", func(f *SignUpForm) { f.Username = "wonder alice" }, Lookups{}, "username", "Must be a single word (no spaces)"},
		{"username taken", nil, Lookups{UsernameTaken: func(string) bool { return true }}, "username", "Username already taken. Please choose another."},
		{"bad email", func(f *SignUpForm) { f.Email = "not-an-email" }, Lookups{}, "email", "Invalid email address"},
		{"email taken", nil, Lookups{EmailTaken: func(string) bool { return true }}, "email", "Email already registered. Please use a different email."},
		{"password too short", func(f *SignUpForm) { f.Password = "Ab1$"; f.PasswordConfirm = "Ab1$" }, Lookups{}, "password", "Must be 8 characters or more"},
		{"password no uppercase", func(f *SignUpForm) { f.Password = "sup3r$ecret"; f.PasswordConfirm = "sup3r$ecret" }, Lookups{}, "password", "Must contain at least one uppercase letter"},
		{"password no lowercase", func(f *SignUpForm) { f.Password = "SUP3R$ECRET"; f.PasswordConfirm = "SUP3R$ECRET" }, Lookups{}, "password", "Must contain at least one lowercase letter"},
		{"password no digit", func(f *SignUpForm) { f.Password = "Super$ecret"; f.PasswordConfirm = "Super$ecret" }, Lookups{}, "password", "Must contain at least one number"},
		{"password no special", func(f *SignUpForm) { f.Password = "Sup3rSecret"; f.PasswordConfirm = "Sup3rSecret" }, Lookups{}, "password", "Must contain at least one special character"},
		{"confirmation mismatch", func(f *SignUpForm) { f.PasswordConfirm = "Different1!" }, Lookups{}, "passwordConfirm", "Passwords must match"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			if tc.mutate != nil {
				tc.mutate(&form)
			}
			errs := ValidateSignUp(form, tc.lookups)
			assert.Equal(t, tc.wantMsg, errs[tc.wantField])
		})
	}
}

func TestValidateSignUp_AcceptsValidForm(t *testing.T) {
	lookups := Lookups{
		UsernameTaken: func(string) bool { return false },
		EmailTaken:    func(string) bool { return false },
	}
	assert.Empty(t, ValidateSignUp(validForm(), lookups))
}

func TestValidateSignUp_LookupsAreCapabilities(t *testing.T) {
	// Validation must work without storage access at all.
	assert.Empty(t, ValidateSignUp(validForm(), Lookups{}))
}

func TestValidateLogin(t *testing.T) {
	assert.Empty(t, ValidateLogin(LoginForm{Identifier: "wonderalice", Password: "x"}))

	errs := ValidateLogin(LoginForm{})
	assert.Equal(t, "Required", errs["identifier"])
	assert.Equal(t, "Required", errs["password"])
}
