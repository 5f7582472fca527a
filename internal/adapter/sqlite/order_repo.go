package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"bookstore/internal/domain"
)

var _ domain.OrderRepository = (*DB)(nil)

// AppendOrder stores a finalized order. The item snapshots are serialized
// into the row; orders are immutable so the document never needs updating.
func (d *DB) AppendOrder(ctx context.Context, order domain.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("marshal order items: %w", err)
	}
	_, err = d.sql.ExecContext(ctx,
		"INSERT INTO orders (order_id, date, username, shipping_method, shipping_cost, total, items) VALUES (?, ?, ?, ?, ?, ?, ?)",
		order.OrderID, order.Date.UTC(), order.Username, string(order.ShippingMethod), order.ShippingCost, order.Total, string(items),
	)
	return err
}

// ListOrdersByUsername returns the matching orders in insertion order, which
// rowid preserves for an append-only table.
func (d *DB) ListOrdersByUsername(ctx context.Context, username string) ([]domain.Order, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT order_id, date, username, shipping_method, shipping_cost, total, items FROM orders WHERE username = ? ORDER BY rowid",
		username,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		var method string
		var items string
		if err := rows.Scan(&o.OrderID, &o.Date, &o.Username, &method, &o.ShippingCost, &o.Total, &items); err != nil {
			return nil, err
		}
		o.ShippingMethod = domain.ShippingMethod(method)
		if err := json.Unmarshal([]byte(items), &o.Items); err != nil {
			return nil, fmt.Errorf("unmarshal order items: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
