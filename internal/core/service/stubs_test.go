package service

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bengalibowl/ordering-client/internal/core/domain"
	"github.com/bengalibowl/ordering-client/internal/core/ports"
)

// memStore is an in-memory CredentialStore.
type memStore struct {
	token  string
	has    bool
	saves  int
	clears int
}

func (s *memStore) Save(_ context.Context, token string) error {
	s.token = token
	s.has = true
	s.saves++
	return nil
}

func (s *memStore) Read(_ context.Context) (string, error) {
	if !s.has {
		return "", domain.ErrNoCredential
	}
	return s.token, nil
}

func (s *memStore) Clear(_ context.Context) error {
	s.token = ""
	s.has = false
	s.clears++
	return nil
}

// recordNotifier captures notices in order.
type recordNotifier struct {
	notices []string
}

func (n *recordNotifier) Success(msg string) { n.notices = append(n.notices, "success: "+msg) }
func (n *recordNotifier) Error(msg string)   { n.notices = append(n.notices, "error: "+msg) }
func (n *recordNotifier) Info(msg string)    { n.notices = append(n.notices, "info: "+msg) }

// stubGateway lets each test wire only the operations it needs.
type stubGateway struct {
	loginFn       func(ports.LoginInput) (string, error)
	signupFn      func(ports.SignupInput) (*domain.Staff, error)
	listMenuFn    func() ([]domain.MenuItem, error)
	createOrderFn func(ports.CreateOrderInput) (*domain.Order, error)
	createMenuFn  func(ports.MenuItemInput) (*domain.MenuItem, error)
	updateMenuFn  func(string, ports.MenuItemInput) (*domain.MenuItem, error)
	deleteMenuFn  func(string) error
	listOrdersFn  func() ([]domain.Order, error)
	updateOrderFn func(string, domain.OrderStatus) (*domain.Order, error)
	statsFn       func() (*domain.DashboardStats, error)

	calls []string
}

func (g *stubGateway) Login(_ context.Context, input ports.LoginInput) (string, error) {
	g.calls = append(g.calls, "login")
	return g.loginFn(input)
}

func (g *stubGateway) Signup(_ context.Context, input ports.SignupInput) (*domain.Staff, error) {
	g.calls = append(g.calls, "signup")
	return g.signupFn(input)
}

func (g *stubGateway) ListMenu(_ context.Context) ([]domain.MenuItem, error) {
	g.calls = append(g.calls, "list_menu")
	return g.listMenuFn()
}

func (g *stubGateway) CreateOrder(_ context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	g.calls = append(g.calls, "create_order")
	return g.createOrderFn(input)
}

func (g *stubGateway) CreateMenuItem(_ context.Context, input ports.MenuItemInput) (*domain.MenuItem, error) {
	g.calls = append(g.calls, "create_menu_item")
	return g.createMenuFn(input)
}

func (g *stubGateway) UpdateMenuItem(_ context.Context, id string, input ports.MenuItemInput) (*domain.MenuItem, error) {
	g.calls = append(g.calls, "update_menu_item")
	return g.updateMenuFn(id, input)
}

func (g *stubGateway) DeleteMenuItem(_ context.Context, id string) error {
	g.calls = append(g.calls, "delete_menu_item")
	return g.deleteMenuFn(id)
}

func (g *stubGateway) ListOrders(_ context.Context) ([]domain.Order, error) {
	g.calls = append(g.calls, "list_orders")
	return g.listOrdersFn()
}

func (g *stubGateway) UpdateOrderStatus(_ context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	g.calls = append(g.calls, "update_order_status")
	return g.updateOrderFn(id, status)
}

func (g *stubGateway) DashboardStats(_ context.Context) (*domain.DashboardStats, error) {
	g.calls = append(g.calls, "dashboard_stats")
	return g.statsFn()
}

// signToken mints a real HS256 token for decode tests.
func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

// rawToken builds a three-segment token whose payload is the given JSON,
// without going through a JWT library.
func rawToken(payload string) string {
	return "header." + base64.RawURLEncoding.EncodeToString([]byte(payload)) + ".sig"
}
