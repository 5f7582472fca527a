package app

import (
	"context"
	"testing"
	"time"

	"bookstore/internal/adapter/memory"
	"bookstore/internal/domain"
)

func fixedClock() time.Time {
	return time.Date(2025, time.March, 9, 14, 30, 0, 0, time.UTC)
}

func cartFixture() []domain.CartItem {
	return []domain.CartItem{
		{ItemID: "item-1", BookID: 0, Title: "The Fellowship of the Ring", Author: "J.R.R. Tolkien",
			Color: domain.ColorGreen, Quantity: 1, UnitPrice: 600, Total: 600},
	}
}

func TestOrderService_Place_Totals(t *testing.T) {
	tests := []struct {
		name     string
		method   domain.ShippingMethod
		wantCost float64
	}{
		{"pickup", domain.ShippingPickupStore, 0},
		{"standard", domain.ShippingDeliveryStandard, 150},
		{"express", domain.ShippingDeliveryExpress, 250},
		{"unknown defaults to free pickup", domain.ShippingMethod("carrierPigeon"), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			svc := NewOrderService(memory.New())
			svc.now = fixedClock

			order, err := svc.Place(ctx, cartFixture(), tc.method, "alice")
			if err != nil {
				t.Fatalf("Place: %v", err)
			}
			if order.ShippingCost != tc.wantCost {
				t.Errorf("shippingCost = %v; want %v", order.ShippingCost, tc.wantCost)
			}
			if want := 600 + tc.wantCost; order.Total != want {
				t.Errorf("total = %v; want %v", order.Total, want)
			}
			if order.OrderID == "" {
				t.Error("expected a minted order ID")
			}
			if !order.Date.Equal(fixedClock()) {
				t.Errorf("date = %v; want %v", order.Date, fixedClock())
			}
		})
	}
}

func TestOrderService_Place_ExpressScenario(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(memory.New())

	order, err := svc.Place(ctx, cartFixture(), domain.ShippingDeliveryExpress, "alice")
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if order.Total != 850 {
		t.Errorf("total = %v; want 850 (600 cart + 250 express)", order.Total)
	}
}

func TestOrderService_Place_SnapshotsItems(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(memory.New())

	items := cartFixture()
	order, err := svc.Place(ctx, items, domain.ShippingPickupStore, "alice")
	if err != nil {
		t.Fatalf("Place: %v", err)
	}

	// Mutating the caller's slice must not reach the historical record.
	items[0].Quantity = 99
	items[0].Total = 59400

	if order.Items[0].Quantity != 1 || order.Items[0].Total != 600 {
		t.Errorf("order items were not snapshotted: %+v", order.Items[0])
	}
}

func TestOrderService_Place_DoesNotClearCart(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	cart := NewCartService(store)
	orders := NewOrderService(store)

	cart.Add(ctx, testBook(0, "Dune", 630), domain.ColorBrown, 1)
	items, _ := cart.Items(ctx)

	if _, err := orders.Place(ctx, items, domain.ShippingPickupStore, "alice"); err != nil {
		t.Fatalf("Place: %v", err)
	}

	// Clearing is the caller's separately sequenced step.
	after, _ := cart.Items(ctx)
	if len(after) != 1 {
		t.Errorf("order placement cleared the cart; %d items left", len(after))
	}
}

func TestOrderService_ForUser_FiltersAndPreservesOrder(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(memory.New())

	first, _ := svc.Place(ctx, cartFixture(), domain.ShippingPickupStore, "alice")
	svc.Place(ctx, cartFixture(), domain.ShippingDeliveryStandard, "bob")
	second, _ := svc.Place(ctx, cartFixture(), domain.ShippingDeliveryExpress, "alice")

	orders, err := svc.ForUser(ctx, "alice")
	if err != nil {
		t.Fatalf("ForUser: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders for alice, got %d", len(orders))
	}
	if orders[0].OrderID != first.OrderID || orders[1].OrderID != second.OrderID {
		t.Errorf("orders out of insertion order: %s, %s", orders[0].OrderID, orders[1].OrderID)
	}

	none, err := svc.ForUser(ctx, "mallory")
	if err != nil {
		t.Fatalf("ForUser: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no orders for mallory, got %d", len(none))
	}
}
