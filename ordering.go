// Package ordering assembles the restaurant ordering client: session,
// cart, checkout, menu and order-board services wired to the backend
// gateway, with the credential store the configuration selects. Hosting
// UIs construct one App and hang their screens off its services.
package ordering

import (
	"context"

	"github.com/bengalibowl/ordering-client/internal/core/ports"
	"github.com/bengalibowl/ordering-client/internal/core/service"
	"github.com/bengalibowl/ordering-client/internal/gateway"
	"github.com/bengalibowl/ordering-client/internal/infrastructure/config"
	"github.com/bengalibowl/ordering-client/internal/infrastructure/credstore"
	"github.com/bengalibowl/ordering-client/internal/infrastructure/notify"
	"github.com/bengalibowl/ordering-client/pkg/logger"
)

// App is the fully wired client. Fields are live for the process lifetime;
// the zero value is not usable, construct through New.
type App struct {
	Session  *service.Session
	Cart     *service.CartLedger
	Checkout *service.Checkout
	Menu     *service.MenuManager
	Board    *service.OrderBoard
	Gateway  ports.Gateway
	Store    ports.CredentialStore
}

// Options carries the host-provided collaborators. Both are optional: a nil
// Notifier routes notices to the logger, a nil Navigator makes forced
// redirects a no-op (sensible for headless use).
type Options struct {
	Notifier  ports.Notifier
	Navigator ports.Navigator
}

// New wires the client from configuration. The redis credential backend
// fails here when the server is unreachable; everything else is lazy.
// Session state is not restored yet, call App.Session.Bootstrap once the
// host is ready to react to it.
func New(ctx context.Context, cfg *config.Config, opts Options) (*App, error) {
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	store, err := credstore.FromConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.NewLogNotifier(log)
	}

	gw := gateway.New(cfg.APIBaseURL, store, opts.Navigator, log)
	cart := service.NewCartLedger(notifier)

	return &App{
		Session:  service.NewSession(store, gw, log),
		Cart:     cart,
		Checkout: service.NewCheckout(cart, gw, log),
		Menu:     service.NewMenuManager(gw, log),
		Board:    service.NewOrderBoard(gw, log),
		Gateway:  gw,
		Store:    store,
	}, nil
}
