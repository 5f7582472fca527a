package sqlite

import (
	"context"
	"time"

	"bookstore/internal/domain"
)

var _ domain.AccountRepository = (*DB)(nil)

// AppendAccount stores a new account record.
func (d *DB) AppendAccount(ctx context.Context, account domain.Account) error {
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO accounts (username, email, password, first_name, surname, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		account.Username, account.Email, account.Password, account.FirstName, account.Surname, time.Now().UTC(),
	)
	return err
}

// ListAccounts returns every account in registration order.
func (d *DB) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT username, email, password, first_name, surname FROM accounts ORDER BY rowid",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.Username, &a.Email, &a.Password, &a.FirstName, &a.Surname); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}
