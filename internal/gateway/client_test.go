package gateway_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bengalibowl/ordering-client/internal/core/domain"
	"github.com/bengalibowl/ordering-client/internal/core/ports"
	"github.com/bengalibowl/ordering-client/internal/core/service"
	"github.com/bengalibowl/ordering-client/internal/gateway"
	"github.com/bengalibowl/ordering-client/internal/infrastructure/notify"
	"github.com/bengalibowl/ordering-client/internal/stubserver"
)

type memStore struct {
	token string
	has   bool
}

func (s *memStore) Save(_ context.Context, token string) error {
	s.token, s.has = token, true
	return nil
}

func (s *memStore) Read(_ context.Context) (string, error) {
	if !s.has {
		return "", domain.ErrNoCredential
	}
	return s.token, nil
}

func (s *memStore) Clear(_ context.Context) error {
	s.token, s.has = "", false
	return nil
}

type spyNavigator struct {
	toLogin int
}

func (n *spyNavigator) ToLogin() { n.toLogin++ }

func newBackend(t *testing.T) (*stubserver.Server, *httptest.Server) {
	t.Helper()
	srv := stubserver.New("test-secret")
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts
}

func TestClient_LoginReturnsToken(t *testing.T) {
	srv, ts := newBackend(t)
	srv.SeedStaff("alice", "s3cret", domain.RoleManager)
	client := gateway.New(ts.URL, &memStore{}, nil, zerolog.Nop())

	token, err := client.Login(context.Background(), ports.LoginInput{Username: "alice", Password: "s3cret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}
}

func TestClient_LoginRejectionCarriesBackendMessage(t *testing.T) {
	srv, ts := newBackend(t)
	srv.SeedStaff("alice", "s3cret", domain.RoleManager)
	client := gateway.New(ts.URL, &memStore{}, nil, zerolog.Nop())

	_, err := client.Login(context.Background(), ports.LoginInput{Username: "alice", Password: "wrong"})
	var reqErr *domain.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", reqErr.Status)
	}
	if reqErr.Message != "Invalid username or password" {
		t.Fatalf("expected backend message, got %q", reqErr.Message)
	}
}

func TestClient_PublicCallsNeverAttachAuthorization(t *testing.T) {
	var sawAuth []string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			sawAuth = append(sawAuth, r.Method+" "+r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/menu":
			_, _ = w.Write([]byte(`[]`))
		case "/orders":
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"_id":"o1","items":[],"totalAmount":0,"status":"pending"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer backend.Close()

	// A perfectly valid credential is present, and must still not be sent.
	store := &memStore{token: "header.payload.sig", has: true}
	client := gateway.New(backend.URL, store, nil, zerolog.Nop())

	if _, err := client.ListMenu(context.Background()); err != nil {
		t.Fatalf("list menu: %v", err)
	}
	if _, err := client.CreateOrder(context.Background(), ports.CreateOrderInput{
		Items:       []domain.OrderItem{{MenuItem: "a", Name: "Luchi", Quantity: 1, Price: 3}},
		TotalAmount: 3,
		TableNumber: "1",
	}); err != nil {
		t.Fatalf("create order: %v", err)
	}

	if len(sawAuth) != 0 {
		t.Fatalf("public calls carried an Authorization header: %v", sawAuth)
	}
}

func TestClient_UnauthorizedEvictsSessionAndNavigates(t *testing.T) {
	_, ts := newBackend(t)
	store := &memStore{token: "stale.or.forged", has: true}
	nav := &spyNavigator{}
	client := gateway.New(ts.URL, store, nav, zerolog.Nop())

	_, err := client.ListOrders(context.Background())
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	// The caller's error handling observes a post-logout state.
	if store.has {
		t.Fatalf("credential store must be empty after a 401")
	}
	if nav.toLogin != 1 {
		t.Fatalf("expected one forced navigation to login, got %d", nav.toLogin)
	}
}

func TestClient_AuthedMenuMutationRoundTrip(t *testing.T) {
	srv, ts := newBackend(t)
	srv.SeedStaff("alice", "s3cret", domain.RoleManager)
	store := &memStore{}
	client := gateway.New(ts.URL, store, &spyNavigator{}, zerolog.Nop())

	token, err := client.Login(context.Background(), ports.LoginInput{Username: "alice", Password: "s3cret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := store.Save(context.Background(), token); err != nil {
		t.Fatalf("save: %v", err)
	}

	created, err := client.CreateMenuItem(context.Background(), ports.MenuItemInput{
		Name: "Shorshe Ilish", Price: 14.50, Category: "Main Course", Available: true,
	})
	if err != nil {
		t.Fatalf("create menu item: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected a server-assigned id")
	}

	updated, err := client.UpdateMenuItem(context.Background(), created.ID, ports.MenuItemInput{
		ID: created.ID, Name: created.Name, Price: 15.00, Category: created.Category, Available: true,
	})
	if err != nil {
		t.Fatalf("update menu item: %v", err)
	}
	if updated.Price != 15.00 {
		t.Fatalf("expected updated price, got %.2f", updated.Price)
	}

	if err := client.DeleteMenuItem(context.Background(), created.ID); err != nil {
		t.Fatalf("delete menu item: %v", err)
	}

	items, err := client.ListMenu(context.Background())
	if err != nil {
		t.Fatalf("list menu: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty menu after delete, got %d items", len(items))
	}
}

func TestClient_NotFoundMessageSurfaced(t *testing.T) {
	srv, ts := newBackend(t)
	srv.SeedStaff("alice", "s3cret", domain.RoleManager)
	store := &memStore{}
	client := gateway.New(ts.URL, store, &spyNavigator{}, zerolog.Nop())

	token, _ := client.Login(context.Background(), ports.LoginInput{Username: "alice", Password: "s3cret"})
	_ = store.Save(context.Background(), token)

	_, err := client.UpdateOrderStatus(context.Background(), "missing", domain.StatusReady)
	var reqErr *domain.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.Status != http.StatusNotFound || reqErr.Message != "order not found" {
		t.Fatalf("unexpected error: %+v", reqErr)
	}
}

// TestEndToEnd_GuestOrderAndAdminBoard walks the whole product flow: a guest
// browses the menu, fills a cart and places an order; a manager logs in,
// sees the order on the board and moves it along.
func TestEndToEnd_GuestOrderAndAdminBoard(t *testing.T) {
	srv, ts := newBackend(t)
	srv.SeedStaff("manager1", "s3cret", domain.RoleManager)
	srv.SeedMenuItem(domain.MenuItem{Name: "Kacchi Biryani", Price: 10.00, Category: "Main Course", Available: true})
	srv.SeedMenuItem(domain.MenuItem{Name: "Chingri Malai", Price: 5.50, Category: "Main Course", Available: true})

	store := &memStore{}
	nav := &spyNavigator{}
	log := zerolog.Nop()
	client := gateway.New(ts.URL, store, nav, log)

	session := service.NewSession(store, client, log)
	if err := session.Bootstrap(context.Background()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	// Guest flow: browse, fill the cart, check out.
	menu := service.NewMenuManager(client, log)
	items, err := menu.Available(context.Background())
	if err != nil {
		t.Fatalf("available: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 menu items, got %d", len(items))
	}

	cart := service.NewCartLedger(notify.NewLogNotifier(log))
	cart.Add(items[0])
	cart.Add(items[1])
	cart.Add(items[1])
	if cart.Total() != 21.00 {
		t.Fatalf("expected cart total 21.00, got %.2f", cart.Total())
	}

	checkout := service.NewCheckout(cart, client, log)
	placed, err := checkout.PlaceOrder(context.Background(), "5")
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if placed.TotalAmount != 21.00 || len(placed.Items) != 2 {
		t.Fatalf("unexpected order: %+v", placed)
	}
	if placed.Status != domain.StatusPending {
		t.Fatalf("new orders start pending, got %s", placed.Status)
	}
	if cart.Len() != 0 {
		t.Fatalf("cart must be empty after checkout")
	}
	if backendOrders := srv.Orders(); len(backendOrders) != 1 || len(backendOrders[0].Items) != 2 || backendOrders[0].TotalAmount != 21.00 {
		t.Fatalf("backend recorded an unexpected order: %+v", backendOrders)
	}

	// Admin flow: log in, inspect the board, advance the order.
	if _, err := session.Login(context.Background(), "manager1", "s3cret"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if !session.IsAdmin() {
		t.Fatalf("manager1 must be an admin")
	}

	board := service.NewOrderBoard(client, log)
	if err := board.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	orders := board.Filtered("pending")
	if len(orders) != 1 {
		t.Fatalf("expected 1 pending order, got %d", len(orders))
	}
	if err := board.RequestTransition(context.Background(), orders[0].ID, domain.StatusPreparing); err != nil {
		t.Fatalf("transition: %v", err)
	}

	stats, err := client.DashboardStats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalOrders != 1 || stats.TotalRevenue != 21.00 || stats.TotalMenuItems != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	if nav.toLogin != 0 {
		t.Fatalf("no forced navigation expected in the happy path")
	}
}
