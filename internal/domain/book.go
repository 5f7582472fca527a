// Package domain contains the core business entities and interfaces.
package domain

import "context"

// Color is a cover color variant. A shopper may change a book's color before
// adding it to the cart; it is purely cosmetic and never affects the price.
type Color string

const (
	ColorGreen  Color = "green"
	ColorPurple Color = "purple"
	ColorBrown  Color = "brown"
)

// Valid reports whether c is one of the known cover colors.
func (c Color) Valid() bool {
	switch c {
	case ColorGreen, ColorPurple, ColorBrown:
		return true
	}
	return false
}

// Image returns the cover image asset name for the color.
func (c Color) Image() string {
	switch c {
	case ColorPurple:
		return "hardcoverColor2Org.png"
	case ColorBrown:
		return "hardcoverColor3Org.png"
	default:
		return "hardcoverColor1Org.png"
	}
}

// Book represents one catalog record. Everything except Color is immutable;
// Color is mutated only by the catalog's color-update transition.
type Book struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Color         Color   `json:"color"`
	Quantity      int     `json:"quantity"`
	Total         float64 `json:"total"`
	PurchaseState int     `json:"purchaseState"`
}

// CatalogRepository is the port for catalog state.
type CatalogRepository interface {
	ListBooks(ctx context.Context) ([]Book, error)
	UpdateBookColor(ctx context.Context, bookID int64, color Color) (bool, error)
}
