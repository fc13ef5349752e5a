package ports

import (
	"context"

	"github.com/bengalibowl/ordering-client/internal/core/domain"
)

// LoginInput carries the public login form.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignupInput carries the staff signup form.
type SignupInput struct {
	Name     string  `json:"name"     validate:"required"`
	Username string  `json:"username" validate:"required"`
	Email    string  `json:"email"    validate:"required,email"`
	Password string  `json:"password" validate:"required"`
	Mobile   string  `json:"mobile"   validate:"required"`
	Age      int     `json:"age"      validate:"required,gt=0"`
	Work     string  `json:"work"     validate:"required,oneof=manager chef waiter"`
	Address  string  `json:"address"  validate:"required"`
	Salary   float64 `json:"salary"   validate:"required,gt=0"`
}

// MenuItemInput carries the admin menu form. ID is empty on create and set
// on update.
type MenuItemInput struct {
	ID          string  `json:"-"`
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Category    string  `json:"category"    validate:"required"`
	Available   bool    `json:"available"`
	Image       string  `json:"image,omitempty"`
}

// CreateOrderInput is the checkout payload. TotalAmount is the cart total
// at the moment of placing; once the order exists the server's figure wins.
type CreateOrderInput struct {
	Items       []domain.OrderItem `json:"items"`
	TotalAmount float64            `json:"totalAmount"`
	TableNumber string             `json:"tableNumber"`
}

// Gateway routes calls to the backend over one of two transports.
//
// Public operations never attach a credential, so an expired or missing
// token while browsing the menu cannot trigger a forced redirect.
// Authenticated operations attach the stored bearer token and share an
// interceptor that tears the session down on any 401 before the error
// reaches the caller.
type Gateway interface {
	// Public transport.
	Login(ctx context.Context, input LoginInput) (string, error)
	Signup(ctx context.Context, input SignupInput) (*domain.Staff, error)
	ListMenu(ctx context.Context) ([]domain.MenuItem, error)
	CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error)

	// Authenticated transport.
	CreateMenuItem(ctx context.Context, input MenuItemInput) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id string, input MenuItemInput) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id string) error
	ListOrders(ctx context.Context) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}
