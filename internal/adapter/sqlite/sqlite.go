// Package sqlite implements the durable repositories on an embedded SQLite
// database. Accounts and the order history live here; there is no server-side
// persistence anywhere in the system.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps a *sql.DB and implements the durable domain repositories.
type DB struct {
	sql *sql.DB
}

// Open opens (creating if necessary) the database file, pings, and runs
// migrations.
func Open(path string) (*DB, error) {
	s, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// A single writer keeps the embedded database simple; the stores are
	// single-threaded by design anyway.
	s.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			username TEXT PRIMARY KEY,
			email TEXT NOT NULL,
			password TEXT NOT NULL,
			first_name TEXT NOT NULL,
			surname TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS orders (
			order_id TEXT PRIMARY KEY,
			date DATETIME NOT NULL,
			username TEXT NOT NULL,
			shipping_method TEXT NOT NULL,
			shipping_cost REAL NOT NULL,
			total REAL NOT NULL,
			items TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_orders_username ON orders(username);`,
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
