package domain

import "context"

// CartItem is one line in the cart: a chosen book, color and quantity with a
// price snapshot frozen at add time. UnitPrice and Total are authoritative;
// BookID is only a weak reference back into the catalog for display purposes.
type CartItem struct {
	ItemID    string  `json:"itemId"`
	BookID    int64   `json:"bookId"`
	Title     string  `json:"title"`
	Author    string  `json:"author"`
	Color     Color   `json:"color"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
}

// CartSnapshot is the persisted interchange shape of the whole cart.
type CartSnapshot struct {
	Items []CartItem `json:"items"`
}

// CartRepository is the port for cart state.
type CartRepository interface {
	ListItems(ctx context.Context) ([]CartItem, error)
	AppendItem(ctx context.Context, item CartItem) error
	// ReplaceItem swaps the stored line item with the same ItemID.
	// Reports false when no such item exists.
	ReplaceItem(ctx context.Context, item CartItem) (bool, error)
	RemoveItem(ctx context.Context, itemID string) (bool, error)
	ClearItems(ctx context.Context) error
	// ReplaceItems swaps the entire cart contents, used for hydration.
	ReplaceItems(ctx context.Context, items []CartItem) error
}
