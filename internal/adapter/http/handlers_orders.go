package adapthttp

import (
	"errors"
	"net/http"

	"bookstore/internal/domain"
)

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()

	session, err := s.accounts.Session(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if !session.IsLoggedIn {
		writeError(w, http.StatusUnauthorized, errors.New("sign in to place an order"))
		return
	}

	var body struct {
		ShippingMethod string `json:"shippingMethod"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	items, err := s.cart.Items(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if len(items) == 0 {
		writeError(w, http.StatusBadRequest, errors.New("cart is empty"))
		return
	}

	order, err := s.orders.Place(ctx, items, domain.ShippingMethod(body.ShippingMethod), session.Username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	// Clearing the cart is sequenced after a successful placement; the order
	// engine itself never touches the cart.
	if err := s.cart.Clear(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"order": order})
}

func (s *Server) handleOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()

	session, err := s.accounts.Session(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if !session.IsLoggedIn {
		// The orders view shows a "not logged in" placeholder; there is no
		// order data to protect, only to scope.
		writeJSON(w, http.StatusOK, map[string]any{"loggedIn": false, "orders": []domain.Order{}})
		return
	}

	orders, err := s.orders.ForUser(ctx, session.Username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"loggedIn": true, "orders": orders})
}
