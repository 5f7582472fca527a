// Package app holds the application services and business logic.
package app

import (
	"context"

	"bookstore/internal/domain"

	"github.com/google/uuid"
)

// CartService encapsulates the cart transitions. Every mutating transition
// notifies the registered subscribers with the resulting snapshot; persistence
// is wired as a subscriber rather than inlined here.
type CartService struct {
	repo domain.CartRepository
	subs []func(domain.CartSnapshot)
}

// NewCartService creates a CartService backed by the given repository.
func NewCartService(repo domain.CartRepository) *CartService {
	return &CartService{repo: repo}
}

// Subscribe registers fn to receive the cart snapshot after every mutating
// transition. Subscribers run synchronously on the calling goroutine.
func (s *CartService) Subscribe(fn func(domain.CartSnapshot)) {
	s.subs = append(s.subs, fn)
}

// Add mints a new line item for the book with a price snapshot frozen at add
// time. It always appends: adding the same book and color twice produces two
// distinct line items. A quantity below 1 silently defaults to 1.
func (s *CartService) Add(ctx context.Context, book domain.Book, color domain.Color, quantity int) (domain.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}
	if !color.Valid() {
		color = book.Color
	}
	item := domain.CartItem{
		ItemID:    uuid.NewString(),
		BookID:    book.ID,
		Title:     book.Title,
		Author:    book.Author,
		Color:     color,
		Image:     color.Image(),
		Quantity:  quantity,
		UnitPrice: book.Price,
		Total:     book.Price * float64(quantity),
	}
	if err := s.repo.AppendItem(ctx, item); err != nil {
		return domain.CartItem{}, err
	}
	s.notify(ctx)
	return item, nil
}

// UpdateQuantity replaces the quantity of the matching line item and
// recomputes its total. Quantities below 1 and unknown item IDs are swallowed
// without signaling; the cart is left untouched.
func (s *CartService) UpdateQuantity(ctx context.Context, itemID string, quantity int) error {
	if quantity < 1 {
		return nil
	}
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return err
	}
	for _, item := range items {
		if item.ItemID != itemID {
			continue
		}
		item.Quantity = quantity
		item.Total = item.UnitPrice * float64(quantity)
		ok, err := s.repo.ReplaceItem(ctx, item)
		if err != nil {
			return err
		}
		if ok {
			s.notify(ctx)
		}
		return nil
	}
	return nil
}

// Remove deletes the matching line item; removing an unknown ID is a no-op.
func (s *CartService) Remove(ctx context.Context, itemID string) error {
	removed, err := s.repo.RemoveItem(ctx, itemID)
	if err != nil {
		return err
	}
	if removed {
		s.notify(ctx)
	}
	return nil
}

// Clear empties the cart unconditionally.
func (s *CartService) Clear(ctx context.Context) error {
	if err := s.repo.ClearItems(ctx); err != nil {
		return err
	}
	s.notify(ctx)
	return nil
}

// Items returns the current line items.
func (s *CartService) Items(ctx context.Context) ([]domain.CartItem, error) {
	return s.repo.ListItems(ctx)
}

// Total derives the cart total from the line items. It is recomputed on every
// call; the line items are the single source of truth.
func (s *CartService) Total(ctx context.Context) (float64, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, item := range items {
		total += item.Total
	}
	return total, nil
}

func (s *CartService) notify(ctx context.Context) {
	if len(s.subs) == 0 {
		return
	}
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return
	}
	snap := domain.CartSnapshot{Items: items}
	for _, fn := range s.subs {
		fn(snap)
	}
}
