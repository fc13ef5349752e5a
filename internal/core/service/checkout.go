package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bengalibowl/ordering-client/internal/core/domain"
	"github.com/bengalibowl/ordering-client/internal/core/ports"
)

// Checkout turns the cart into an order over the public transport, so a
// guest without a credential can place one.
type Checkout struct {
	cart *CartLedger
	gw   ports.Gateway
	log  zerolog.Logger
}

func NewCheckout(cart *CartLedger, gw ports.Gateway, log zerolog.Logger) *Checkout {
	return &Checkout{cart: cart, gw: gw, log: log}
}

// PlaceOrder submits the current cart for the given table. An empty cart or
// missing table number fails before any network call. The cart is cleared
// only after the backend accepts the order; on failure it is left intact so
// the guest can retry.
func (c *Checkout) PlaceOrder(ctx context.Context, tableNumber string) (*domain.Order, error) {
	lines := c.cart.Lines()

	var problems []string
	if len(lines) == 0 {
		problems = append(problems, "your cart is empty")
	}
	if tableNumber == "" {
		problems = append(problems, "table number is required")
	}
	if len(problems) > 0 {
		return nil, &domain.ValidationError{Fields: problems}
	}

	items := make([]domain.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, domain.OrderItem{
			MenuItem: l.ItemID,
			Name:     l.Name,
			Quantity: l.Quantity,
			Price:    l.UnitPrice,
		})
	}

	order, err := c.gw.CreateOrder(ctx, ports.CreateOrderInput{
		Items:       items,
		TotalAmount: c.cart.Total(),
		TableNumber: tableNumber,
	})
	if err != nil {
		return nil, err
	}

	c.cart.Clear()
	c.log.Info().Str("order_id", order.ID).Str("table", tableNumber).Float64("total", order.TotalAmount).Msg("order placed")
	return order, nil
}
