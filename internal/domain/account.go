package domain

import "context"

// Account is a registered user record as stored at rest. Username is
// reversibly encoded so it can be recovered for display; Email and Password
// hold one-way salted hashes and are only ever compared by re-hashing.
type Account struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	Surname   string `json:"surname"`
}

// AccountRepository is the port for account persistence. Accounts are only
// appended; nothing short of a full storage reset removes them.
type AccountRepository interface {
	AppendAccount(ctx context.Context, account Account) error
	ListAccounts(ctx context.Context) ([]Account, error)
}

// Session is the current login identity. The zero value is the logged-out
// state.
type Session struct {
	IsLoggedIn bool   `json:"isLoggedIn"`
	Username   string `json:"username"`
}

// SessionStore is the port for the single process-wide session.
type SessionStore interface {
	GetSession(ctx context.Context) (Session, error)
	PutSession(ctx context.Context, session Session) error
}
