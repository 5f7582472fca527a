package adapthttp

import (
	"errors"
	"net/http"

	"bookstore/internal/app"
)

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()

	var body struct {
		FirstName       string `json:"firstName"`
		Surname         string `json:"surname"`
		Username        string `json:"username"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		PasswordConfirm string `json:"passwordConfirm"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	form := app.SignUpForm{
		FirstName:       body.FirstName,
		Surname:         body.Surname,
		Username:        body.Username,
		Email:           body.Email,
		Password:        body.Password,
		PasswordConfirm: body.PasswordConfirm,
	}
	lookups := app.Lookups{
		UsernameTaken: func(username string) bool {
			taken, err := s.accounts.UsernameTaken(ctx, username)
			return err == nil && taken
		},
		EmailTaken: func(email string) bool {
			taken, err := s.accounts.EmailTaken(ctx, email)
			return err == nil && taken
		},
	}
	if errs := app.ValidateSignUp(form, lookups); len(errs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": errs})
		return
	}

	reg := app.Registration{
		FirstName: body.FirstName,
		Surname:   body.Surname,
		Username:  body.Username,
		Email:     body.Email,
		Password:  body.Password,
	}
	if _, err := s.accounts.Register(ctx, reg, s.anonymize); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"status": "ok"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()

	var body struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	form := app.LoginForm{Identifier: body.Identifier, Password: body.Password}
	if errs := app.ValidateLogin(form); len(errs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": errs})
		return
	}

	session, err := s.accounts.Authenticate(ctx, body.Identifier, body.Password)
	if errors.Is(err, app.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"session": session})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	session, err := s.accounts.Logout(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"session": session})
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	session, err := s.accounts.Session(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"session": session})
}
