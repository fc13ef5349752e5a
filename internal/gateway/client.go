// Package gateway is the client's only route to the backend. It keeps two
// independent transports to the same base address: a public one that never
// attaches a credential (menu browsing, order placement, login, signup) and
// an authenticated one for everything that requires identity. The split
// exists so that a missing or expired credential on a public-facing read
// never triggers a forced redirect; only failures on the authenticated
// transport do.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/bengalibowl/ordering-client/internal/core/domain"
	"github.com/bengalibowl/ordering-client/internal/core/ports"
	"github.com/bengalibowl/ordering-client/internal/gateway/metrics"
)

const (
	transportPublic = "public"
	transportAuthed = "authenticated"
)

// Client implements ports.Gateway over HTTP. Calls are single-shot: no
// retries, no timeout beyond what the caller's context imposes.
type Client struct {
	baseURL string
	public  *http.Client
	authed  *http.Client
	log     zerolog.Logger
}

var _ ports.Gateway = (*Client)(nil)

// New builds a gateway against baseURL. The store feeds the bearer header
// of the authenticated transport; nav receives the forced redirect on 401.
func New(baseURL string, store ports.CredentialStore, nav ports.Navigator, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		public:  &http.Client{},
		authed: &http.Client{
			Transport: &bearerTransport{
				base:  http.DefaultTransport,
				store: store,
				nav:   nav,
				log:   log,
			},
		},
		log: log,
	}
}

// --- Public transport ---

func (c *Client) Login(ctx context.Context, input ports.LoginInput) (string, error) {
	var out tokenResponse
	if err := c.do(ctx, c.public, transportPublic, "login", http.MethodPost, "/auth/login", input, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *Client) Signup(ctx context.Context, input ports.SignupInput) (*domain.Staff, error) {
	var out domain.Staff
	if err := c.do(ctx, c.public, transportPublic, "signup", http.MethodPost, "/auth/signup", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListMenu(ctx context.Context) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	if err := c.do(ctx, c.public, transportPublic, "list_menu", http.MethodGet, "/menu", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	var out domain.Order
	if err := c.do(ctx, c.public, transportPublic, "create_order", http.MethodPost, "/orders", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Authenticated transport ---

func (c *Client) CreateMenuItem(ctx context.Context, input ports.MenuItemInput) (*domain.MenuItem, error) {
	var out domain.MenuItem
	if err := c.do(ctx, c.authed, transportAuthed, "create_menu_item", http.MethodPost, "/menu", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMenuItem(ctx context.Context, id string, input ports.MenuItemInput) (*domain.MenuItem, error) {
	var out domain.MenuItem
	if err := c.do(ctx, c.authed, transportAuthed, "update_menu_item", http.MethodPut, "/menu/"+id, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteMenuItem(ctx context.Context, id string) error {
	return c.do(ctx, c.authed, transportAuthed, "delete_menu_item", http.MethodDelete, "/menu/"+id, nil, nil)
}

func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := c.do(ctx, c.authed, transportAuthed, "list_orders", http.MethodGet, "/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	var out domain.Order
	req := updateStatusRequest{Status: string(status)}
	if err := c.do(ctx, c.authed, transportAuthed, "update_order_status", http.MethodPut, "/orders/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var out domain.DashboardStats
	if err := c.do(ctx, c.authed, transportAuthed, "dashboard_stats", http.MethodGet, "/dashboard/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do performs one JSON round trip and maps any non-2xx into a
// domain.RequestError carrying the most specific message the backend
// offered. Side effects of a 401 on the authenticated channel have already
// happened inside the transport by the time do returns.
func (c *Client) do(ctx context.Context, hc *http.Client, transport, operation, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", operation, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", operation, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(operation, transport, "error").Inc()
		return &domain.RequestError{Message: err.Error()}
	}
	defer resp.Body.Close()

	metrics.RequestsTotal.WithLabelValues(operation, transport, strconv.Itoa(resp.StatusCode)).Inc()
	metrics.RequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &domain.RequestError{Status: resp.StatusCode, Message: responseMessage(resp)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s response: %w", operation, err)
		}
	}
	return nil
}

// responseMessage extracts the backend's error message, falling back to the
// generic status text when the body carries none.
func responseMessage(resp *http.Response) string {
	var envelope backendError
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
		if msg := envelope.text(); msg != "" {
			return msg
		}
	}
	return http.StatusText(resp.StatusCode)
}
