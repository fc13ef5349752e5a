package service

import (
	"sync"

	"github.com/bengalibowl/ordering-client/internal/core/domain"
	"github.com/bengalibowl/ordering-client/internal/core/ports"
)

// CartLedger keeps the in-memory, order-preserving list of cart lines for
// one browsing session. Nothing here persists or fails; every mutation is
// a plain in-memory edit and the total is recomputed on every read.
type CartLedger struct {
	mu     sync.Mutex
	lines  []domain.CartLine
	notify ports.Notifier
}

func NewCartLedger(notify ports.Notifier) *CartLedger {
	return &CartLedger{notify: notify}
}

// Add merges a duplicate add into the existing line (quantity+1) instead of
// creating a second line; a new item is appended with quantity 1. The
// notice distinguishes the two outcomes.
func (c *CartLedger) Add(item domain.MenuItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ItemID == item.ID {
			c.lines[i].Quantity++
			c.notify.Success(item.Name + " quantity updated")
			return
		}
	}

	c.lines = append(c.lines, domain.CartLine{
		ItemID:    item.ID,
		Name:      item.Name,
		UnitPrice: item.Price,
		Quantity:  1,
	})
	c.notify.Success(item.Name + " added to cart")
}

// Remove deletes the line if present; removing an absent id is a no-op.
func (c *CartLedger) Remove(itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(itemID)
}

func (c *CartLedger) removeLocked(itemID string) {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.notify.Info("Item removed from cart")
			return
		}
	}
}

// SetQuantity overwrites the line's quantity, preserving its position.
// Anything below 1 removes the line; a non-positive quantity is never
// stored.
func (c *CartLedger) SetQuantity(itemID string, n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n < 1 {
		c.removeLocked(itemID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines[i].Quantity = n
			return
		}
	}
}

// Clear empties the cart.
func (c *CartLedger) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns the cart in insertion order.
func (c *CartLedger) Lines() []domain.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of distinct lines.
func (c *CartLedger) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// Total is derived from the current lines on every call, never cached.
func (c *CartLedger) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var sum float64
	for _, l := range c.lines {
		sum += l.Subtotal()
	}
	return sum
}
