package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bengalibowl/ordering-client/internal/core/domain"
	"github.com/bengalibowl/ordering-client/internal/core/ports"
)

// OrderBoard holds the admin panel's local projection of backend orders.
// The backend owns the status state machine; the board dispatches whatever
// transition it is asked for and only rewrites its projection when the
// backend accepted it.
type OrderBoard struct {
	gw  ports.Gateway
	log zerolog.Logger

	mu     sync.Mutex
	orders []domain.Order
}

func NewOrderBoard(gw ports.Gateway, log zerolog.Logger) *OrderBoard {
	return &OrderBoard{gw: gw, log: log}
}

// Refresh replaces the projection with the backend's current order list.
func (b *OrderBoard) Refresh(ctx context.Context) error {
	orders, err := b.gw.ListOrders(ctx)
	if err != nil {
		return err
	}
	b.mu.Lock()
	b.orders = orders
	b.mu.Unlock()
	return nil
}

// Orders returns a copy of the projection.
func (b *OrderBoard) Orders() []domain.Order {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.Order, len(b.orders))
	copy(out, b.orders)
	return out
}

// Filtered returns the orders matching the filter. StatusFilterAll selects
// everything; it exists only for the UI and is never sent to the backend.
func (b *OrderBoard) Filtered(filter string) []domain.Order {
	if filter == domain.StatusFilterAll {
		return b.Orders()
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []domain.Order
	for _, o := range b.orders {
		if string(o.Status) == filter {
			out = append(out, o)
		}
	}
	return out
}

// Revenue sums the server-reported totals of the filtered orders, skipping
// cancelled ones.
func (b *OrderBoard) Revenue(filter string) float64 {
	var sum float64
	for _, o := range b.Filtered(filter) {
		if o.Status == domain.StatusCancelled {
			continue
		}
		sum += o.TotalAmount
	}
	return sum
}

// RequestTransition asks the backend to move an order to newStatus. On
// success the local projection is updated; on failure it is left untouched
// and the error is surfaced to the caller. No legality check happens here.
func (b *OrderBoard) RequestTransition(ctx context.Context, orderID string, newStatus domain.OrderStatus) error {
	if _, err := b.gw.UpdateOrderStatus(ctx, orderID, newStatus); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.orders {
		if b.orders[i].ID == orderID {
			b.orders[i].Status = newStatus
			break
		}
	}
	b.log.Info().Str("order_id", orderID).Str("status", string(newStatus)).Msg("order status updated")
	return nil
}
