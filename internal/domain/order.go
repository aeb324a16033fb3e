package domain

import "time"

// OrderStatus is the customer-order state machine: pending → approved or
// cancelled, and back to pending via a rate-limited reopen.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderApproved  OrderStatus = "approved"
	OrderCancelled OrderStatus = "cancelled"
)

// Order is an unauthenticated customer reservation, tracked by its code.
// Approving an order does not decrement stock; only POS sales do. Orders
// reserve nothing until fulfilled over the counter.
type Order struct {
	ID            string        `json:"id"`
	OrderCode     string        `json:"orderCode"`
	CustomerName  string        `json:"customerName"`
	CustomerPhone string        `json:"customerPhone"`
	Items         []CartItem    `json:"items"`
	Total         float64       `json:"total"`
	Status        OrderStatus   `json:"status"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	ApprovedAt    *time.Time    `json:"approvedAt,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// InsufficientItem describes one order line that exceeds current stock,
// returned when an approval is rejected.
type InsufficientItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Requested   float64 `json:"requested"`
	Available   float64 `json:"available"`
}
