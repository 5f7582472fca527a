package adapthttp

import (
	"net/http"

	"bookstore/internal/app"
)

// Server is the driving HTTP adapter that routes the storefront UI's requests
// to the application services.
type Server struct {
	catalog   *app.CatalogService
	cart      *app.CartService
	orders    *app.OrderService
	accounts  *app.AccountService
	anonymize bool
	webDir    string
}

// New creates a Server wired to the given application services. When
// anonymize is true, sign-up stores placeholder names instead of the real
// ones.
func New(catalog *app.CatalogService, cart *app.CartService, orders *app.OrderService, accounts *app.AccountService, anonymize bool, webDir string) *Server {
	return &Server{
		catalog:   catalog,
		cart:      cart,
		orders:    orders,
		accounts:  accounts,
		anonymize: anonymize,
		webDir:    webDir,
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/books", s.handleBooks)
	api.HandleFunc("/books/color", s.handleBookColor)

	api.HandleFunc("/cart", s.handleCart)
	api.HandleFunc("/cart/items", s.handleCartItems)

	api.HandleFunc("/checkout", s.handleCheckout)
	api.HandleFunc("/orders", s.handleOrders)

	api.HandleFunc("/signup", s.handleSignUp)
	api.HandleFunc("/login", s.handleLogin)
	api.HandleFunc("/logout", s.handleLogout)
	api.HandleFunc("/session", s.handleSession)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/", spaFromDisk(s.webDir))

	return s.loggingMiddleware(withNoCache(root))
}
