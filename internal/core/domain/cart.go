package domain

// CartLine is one distinct menu item in the cart with an aggregated
// quantity. At most one line exists per item id; quantity is always >= 1.
type CartLine struct {
	ItemID    string
	Name      string
	UnitPrice float64
	Quantity  int
}

// Subtotal is the line contribution to the cart total.
func (l CartLine) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}
