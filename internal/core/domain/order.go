package domain

import "time"

// OrderStatus is the lifecycle state of an order. The backend owns the
// state machine; the client renders statuses and requests transitions
// without enforcing legality.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// StatusFilterAll is the synthetic filter value shown in the orders UI.
// It is never sent to the backend.
const StatusFilterAll = "All"

// Statuses lists the real statuses in display order.
var Statuses = []OrderStatus{
	StatusPending,
	StatusPreparing,
	StatusReady,
	StatusDelivered,
	StatusCancelled,
}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// OrderItem is one entry of a placed order, as the backend stores it.
type OrderItem struct {
	MenuItem string  `json:"menuItem"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order is owned by the backend. The client never recomputes TotalAmount
// for an existing order; it trusts the server's value once placed.
type Order struct {
	ID          string      `json:"_id"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	TableNumber string      `json:"tableNumber"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// DashboardStats is the aggregate view served to the admin dashboard.
type DashboardStats struct {
	TotalOrders    int     `json:"totalOrders"`
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalMenuItems int     `json:"totalMenuItems"`
}
