package adapthttp

import (
	"errors"
	"net/http"

	"bookstore/internal/domain"
)

func (s *Server) handleCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		s.writeCart(w, r)

	case http.MethodDelete:
		if err := s.cart.Clear(ctx); err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		s.writeCart(w, r)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleCartItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodPost:
		var body struct {
			BookID   int64  `json:"bookId"`
			Color    string `json:"color"`
			Quantity int    `json:"quantity"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		book, err := s.catalog.Get(ctx, body.BookID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		if book == nil {
			writeError(w, http.StatusBadRequest, errors.New("unknown book"))
			return
		}
		item, err := s.cart.Add(ctx, *book, domain.Color(body.Color), body.Quantity)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"item": item})

	case http.MethodPatch:
		var body struct {
			ItemID   string `json:"itemId"`
			Quantity int    `json:"quantity"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		// Invalid quantities and unknown item IDs are deliberate no-ops;
		// the handler just reports the resulting cart.
		if err := s.cart.UpdateQuantity(ctx, body.ItemID, body.Quantity); err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		s.writeCart(w, r)

	case http.MethodDelete:
		var body struct {
			ItemID string `json:"itemId"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if err := s.cart.Remove(ctx, body.ItemID); err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		s.writeCart(w, r)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) writeCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	items, err := s.cart.Items(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	total, err := s.cart.Total(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "total": total})
}
