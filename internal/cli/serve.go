package cli

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"bookstore/internal/adapter/file"
	adapthttp "bookstore/internal/adapter/http"
	"bookstore/internal/adapter/memory"
	"bookstore/internal/adapter/sqlite"
	"bookstore/internal/app"
	"bookstore/internal/config"
	"bookstore/internal/domain"
)

// NewServeCommand returns the command that runs the storefront HTTP server.
func NewServeCommand(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the storefront HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(*cfgPath)
		},
	}
}

func runServe(cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	ctx := context.Background()

	// Live state. Cart and session are session-scoped: they hydrate from
	// JSON snapshots and are written back on every transition.
	store := memory.New()
	snapshots, err := file.NewStore(cfg.SnapshotDir())
	if err != nil {
		return err
	}

	var cart domain.CartSnapshot
	if snapshots.Load("cart", &cart) {
		if err := store.ReplaceItems(ctx, cart.Items); err != nil {
			return err
		}
	}
	var session domain.Session
	if snapshots.Load("session", &session) {
		if err := store.PutSession(ctx, session); err != nil {
			return err
		}
	}

	// Accounts and the order history are durable.
	db, err := sqlite.Open(cfg.DatabasePath())
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	catalogSvc := app.NewCatalogService(store)

	cartSvc := app.NewCartService(store)
	cartSvc.Subscribe(func(snap domain.CartSnapshot) {
		snapshots.Save("cart", snap)
	})

	orderSvc := app.NewOrderService(db)

	accountSvc := app.NewAccountService(db, store)
	accountSvc.SubscribeSession(func(s domain.Session) {
		snapshots.Save("session", s)
	})

	h := adapthttp.New(catalogSvc, cartSvc, orderSvc, accountSvc, cfg.AnonymizeNames, cfg.WebDir).Handler()
	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
