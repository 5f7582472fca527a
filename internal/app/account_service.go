package app

import (
	"context"
	"errors"
	"strings"

	"bookstore/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is the single undifferentiated authentication
// failure. It deliberately does not reveal whether the identifier or the
// password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Placeholder values stored instead of real names when the caller opts into
// anonymized registration.
const (
	placeholderFirstName = "J"
	placeholderSurname   = "Doe"
)

// Registration carries the already-validated sign-up input.
type Registration struct {
	FirstName string
	Surname   string
	Username  string
	Email     string
	Password  string
}

// AccountService handles registration, authentication and the session.
type AccountService struct {
	accounts domain.AccountRepository
	sessions domain.SessionStore
	subs     []func(domain.Session)
}

// NewAccountService creates an AccountService over the given ports.
func NewAccountService(accounts domain.AccountRepository, sessions domain.SessionStore) *AccountService {
	return &AccountService{accounts: accounts, sessions: sessions}
}

// SubscribeSession registers fn to receive the session after every session
// transition.
func (s *AccountService) SubscribeSession(fn func(domain.Session)) {
	s.subs = append(s.subs, fn)
}

// Register stores a new account with its credential material transformed at
// rest: the username is reversibly encoded, the email is lowercased and
// hashed, the password is hashed. When anonymize is true the real first and
// surname are replaced with fixed placeholders; which to store is the
// caller's policy decision, not engine logic.
func (s *AccountService) Register(ctx context.Context, reg Registration, anonymize bool) (domain.Account, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Account{}, err
	}
	emailHash, err := bcrypt.GenerateFromPassword([]byte(strings.ToLower(reg.Email)), bcrypt.DefaultCost)
	if err != nil {
		return domain.Account{}, err
	}

	firstName, surname := reg.FirstName, reg.Surname
	if anonymize {
		firstName, surname = placeholderFirstName, placeholderSurname
	}

	account := domain.Account{
		Username:  domain.EncodeUsername(reg.Username),
		Email:     string(emailHash),
		Password:  string(passwordHash),
		FirstName: firstName,
		Surname:   surname,
	}
	if err := s.accounts.AppendAccount(ctx, account); err != nil {
		return domain.Account{}, err
	}
	return account, nil
}

// Authenticate matches the identifier against every stored account, decoding
// usernames and re-hashing the candidate email for comparison (the stored
// email hash is one-way). On success the session becomes LoggedIn with the
// decoded username. Any failure collapses into ErrInvalidCredentials.
//
// The scan is O(accounts) per attempt, which is fine at demo scale.
func (s *AccountService) Authenticate(ctx context.Context, identifier, password string) (domain.Session, error) {
	accounts, err := s.accounts.ListAccounts(ctx)
	if err != nil {
		return domain.Session{}, err
	}

	lowered := strings.ToLower(identifier)
	for _, account := range accounts {
		username, err := domain.DecodeUsername(account.Username)
		if err != nil {
			continue
		}
		matched := username == identifier ||
			bcrypt.CompareHashAndPassword([]byte(account.Email), []byte(lowered)) == nil
		if !matched {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) != nil {
			return domain.Session{}, ErrInvalidCredentials
		}
		session := domain.Session{IsLoggedIn: true, Username: username}
		if err := s.sessions.PutSession(ctx, session); err != nil {
			return domain.Session{}, err
		}
		s.notify(session)
		return session, nil
	}
	return domain.Session{}, ErrInvalidCredentials
}

// Logout resets the session to logged out unconditionally.
func (s *AccountService) Logout(ctx context.Context) (domain.Session, error) {
	session := domain.Session{}
	if err := s.sessions.PutSession(ctx, session); err != nil {
		return domain.Session{}, err
	}
	s.notify(session)
	return session, nil
}

// Session returns the current session state.
func (s *AccountService) Session(ctx context.Context) (domain.Session, error) {
	return s.sessions.GetSession(ctx)
}

// UsernameTaken reports whether a stored account decodes to the username.
// Comparison is case-sensitive.
func (s *AccountService) UsernameTaken(ctx context.Context, username string) (bool, error) {
	accounts, err := s.accounts.ListAccounts(ctx)
	if err != nil {
		return false, err
	}
	for _, account := range accounts {
		decoded, err := domain.DecodeUsername(account.Username)
		if err != nil {
			continue
		}
		if decoded == username {
			return true, nil
		}
	}
	return false, nil
}

// EmailTaken reports whether any stored email hash matches the candidate.
func (s *AccountService) EmailTaken(ctx context.Context, email string) (bool, error) {
	accounts, err := s.accounts.ListAccounts(ctx)
	if err != nil {
		return false, err
	}
	lowered := strings.ToLower(email)
	for _, account := range accounts {
		if bcrypt.CompareHashAndPassword([]byte(account.Email), []byte(lowered)) == nil {
			return true, nil
		}
	}
	return false, nil
}

func (s *AccountService) notify(session domain.Session) {
	for _, fn := range s.subs {
		fn(session)
	}
}
