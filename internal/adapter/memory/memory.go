// Package memory implements every repository in memory. It is the live state
// container behind the services; durable adapters persist snapshots of it or
// replace it entirely per slice.
package memory

import (
	"context"
	"sync"

	"bookstore/internal/domain"
)

// DB implements the in-memory store for all slices.
type DB struct {
	mu       sync.Mutex
	books    []domain.Book
	items    []domain.CartItem
	orders   []domain.Order
	accounts []domain.Account
	session  domain.Session
}

// New creates an in-memory store seeded with the demo catalog.
func New() *DB {
	return &DB{books: domain.SeedBooks()}
}

// Ensure interfaces are met.
var _ domain.CatalogRepository = (*DB)(nil)
var _ domain.CartRepository = (*DB)(nil)
var _ domain.OrderRepository = (*DB)(nil)
var _ domain.AccountRepository = (*DB)(nil)
var _ domain.SessionStore = (*DB)(nil)

// --- CatalogRepository ---

// ListBooks returns a copy of the catalog.
func (db *DB) ListBooks(ctx context.Context) ([]domain.Book, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	books := make([]domain.Book, len(db.books))
	copy(books, db.books)
	return books, nil
}

// UpdateBookColor replaces the stored color for the matching book.
func (db *DB) UpdateBookColor(ctx context.Context, bookID int64, color domain.Color) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.books {
		if db.books[i].ID == bookID {
			db.books[i].Color = color
			return true, nil
		}
	}
	return false, nil
}

// --- CartRepository ---

// ListItems returns a copy of the cart line items.
func (db *DB) ListItems(ctx context.Context) ([]domain.CartItem, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	items := make([]domain.CartItem, len(db.items))
	copy(items, db.items)
	return items, nil
}

// AppendItem appends a line item.
func (db *DB) AppendItem(ctx context.Context, item domain.CartItem) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.items = append(db.items, item)
	return nil
}

// ReplaceItem swaps the line item with the same ItemID.
func (db *DB) ReplaceItem(ctx context.Context, item domain.CartItem) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.items {
		if db.items[i].ItemID == item.ItemID {
			db.items[i] = item
			return true, nil
		}
	}
	return false, nil
}

// RemoveItem deletes the matching line item if present.
func (db *DB) RemoveItem(ctx context.Context, itemID string) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.items {
		if db.items[i].ItemID == itemID {
			db.items = append(db.items[:i], db.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ClearItems empties the cart.
func (db *DB) ClearItems(ctx context.Context) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.items = nil
	return nil
}

// ReplaceItems swaps the entire cart contents, used for hydration.
func (db *DB) ReplaceItems(ctx context.Context, items []domain.CartItem) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.items = make([]domain.CartItem, len(items))
	copy(db.items, items)
	return nil
}

// --- OrderRepository ---

// AppendOrder appends an order to the history.
func (db *DB) AppendOrder(ctx context.Context, order domain.Order) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.orders = append(db.orders, order)
	return nil
}

// ListOrdersByUsername filters the history by exact username match,
// preserving insertion order.
func (db *DB) ListOrdersByUsername(ctx context.Context, username string) ([]domain.Order, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var orders []domain.Order
	for _, o := range db.orders {
		if o.Username == username {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

// --- AccountRepository ---

// AppendAccount appends an account record.
func (db *DB) AppendAccount(ctx context.Context, account domain.Account) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.accounts = append(db.accounts, account)
	return nil
}

// ListAccounts returns a copy of the account list.
func (db *DB) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	accounts := make([]domain.Account, len(db.accounts))
	copy(accounts, db.accounts)
	return accounts, nil
}

// --- SessionStore ---

// GetSession returns the current session. The zero value is logged out.
func (db *DB) GetSession(ctx context.Context) (domain.Session, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.session, nil
}

// PutSession replaces the current session.
func (db *DB) PutSession(ctx context.Context, session domain.Session) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.session = session
	return nil
}
