package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bookstore/internal/domain"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "bookstore.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestAccountRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	a := domain.Account{
		Username:  domain.EncodeUsername("wonderalice"),
		Email:     "$2a$10$fakeemailhashfakeemailhashfakeemai",
		Password:  "$2a$10$fakepasshashfakepasshashfakepassha",
		FirstName: "J",
		Surname:   "Doe",
	}
	require.NoError(t, db.AppendAccount(ctx, a))

	accounts, err := db.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	require.Equal(t, a, accounts[0])
}

func TestListAccountsPreservesRegistrationOrder(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	for _, name := range []string{"first77", "second77", "third77"} {
		require.NoError(t, db.AppendAccount(ctx, domain.Account{
			Username: domain.EncodeUsername(name),
			Email:    "e-" + name, Password: "p-" + name,
			FirstName: "J", Surname: "Doe",
		}))
	}

	accounts, err := db.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	got, err := domain.DecodeUsername(accounts[0].Username)
	require.NoError(t, err)
	require.Equal(t, "first77", got)
}

func TestOrderRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	order := domain.Order{
		OrderID:  "order-1",
		Date:     time.Date(2025, time.March, 9, 14, 30, 0, 0, time.UTC),
		Username: "alice",
		Items: []domain.CartItem{{
			ItemID: "item-1", BookID: 1, Title: "Dune", Author: "Frank Herbert",
			Color: domain.ColorBrown, Image: "hardcoverColor3Org.png",
			Quantity: 2, UnitPrice: 630, Total: 1260,
		}},
		ShippingMethod: domain.ShippingDeliveryExpress,
		ShippingCost:   250,
		Total:          1510,
	}
	require.NoError(t, db.AppendOrder(ctx, order))

	orders, err := db.ListOrdersByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, orders, 1)

	got := orders[0]
	require.Equal(t, order.OrderID, got.OrderID)
	require.True(t, got.Date.Equal(order.Date), "date %v != %v", got.Date, order.Date)
	require.Equal(t, order.Items, got.Items)
	require.Equal(t, order.ShippingMethod, got.ShippingMethod)
	require.Equal(t, order.ShippingCost, got.ShippingCost)
	require.Equal(t, order.Total, got.Total)
}

func TestOrdersFilterAndInsertionOrder(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	place := func(id, username string) {
		require.NoError(t, db.AppendOrder(ctx, domain.Order{
			OrderID: id, Date: time.Now().UTC(), Username: username,
			ShippingMethod: domain.ShippingPickupStore,
		}))
	}
	place("a1", "alice")
	place("b1", "bob")
	place("a2", "alice")

	orders, err := db.ListOrdersByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.Equal(t, "a1", orders[0].OrderID)
	require.Equal(t, "a2", orders[1].OrderID)

	none, err := db.ListOrdersByUsername(ctx, "mallory")
	require.NoError(t, err)
	require.Empty(t, none)
}
