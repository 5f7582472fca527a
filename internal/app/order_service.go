package app

import (
	"context"
	"time"

	"bookstore/internal/domain"

	"github.com/google/uuid"
)

// OrderService encapsulates order placement and the order history.
type OrderService struct {
	repo domain.OrderRepository
	now  func() time.Time
}

// NewOrderService creates an OrderService backed by the given repository.
func NewOrderService(repo domain.OrderRepository) *OrderService {
	return &OrderService{repo: repo, now: time.Now}
}

// Place snapshots the given cart items into a new immutable order record and
// appends it to the history. The order total is the sum of the item totals
// plus the shipping cost; an unrecognised shipping method ships free as
// in-store pickup. Place never clears the cart: that is the caller's
// separately sequenced step.
func (s *OrderService) Place(ctx context.Context, items []domain.CartItem, method domain.ShippingMethod, username string) (domain.Order, error) {
	cost := method.Cost()

	// Deep copy so later cart mutations cannot reach the historical record.
	snapshot := make([]domain.CartItem, len(items))
	copy(snapshot, items)

	var itemsTotal float64
	for _, item := range snapshot {
		itemsTotal += item.Total
	}

	order := domain.Order{
		OrderID:        uuid.NewString(),
		Date:           s.now().UTC(),
		Username:       username,
		Items:          snapshot,
		ShippingMethod: method,
		ShippingCost:   cost,
		Total:          itemsTotal + cost,
	}
	if err := s.repo.AppendOrder(ctx, order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

// ForUser returns the orders whose username matches exactly, in insertion
// order. Newest-first sorting is left to the presentation layer.
func (s *OrderService) ForUser(ctx context.Context, username string) ([]domain.Order, error) {
	return s.repo.ListOrdersByUsername(ctx, username)
}
