package models

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusPackaging  OrderStatus = "packaging"
	StatusDispatched OrderStatus = "dispatched"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every known status in pipeline order.
var OrderStatuses = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusPackaging,
	StatusDispatched,
	StatusDelivered,
	StatusCancelled,
}

// Known reports whether s is one of the enumerated statuses.
func (s OrderStatus) Known() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Terminal reports whether no transition is defined out of s.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// nextStatus is the documented forward path:
// pending -> confirmed -> packaging -> dispatched -> delivered,
// with pending -> cancelled as the only side exit.
var nextStatus = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusPackaging},
	StatusPackaging:  {StatusDispatched},
	StatusDispatched: {StatusDelivered},
}

// CanTransition reports whether from -> to follows the forward path.
// The storage-level update is permissive by default; this matrix is
// only consulted when strict transitions are enabled.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range nextStatus[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Customer is the contact sub-record captured at checkout.
type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// OrderItem is a snapshot of a menu item at checkout time. It is a
// copy, deliberately decoupled from the live MenuItem record.
type OrderItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image,omitempty"`
	MealGroup string `json:"mealGroup,omitempty"`
}

// OrderFees holds the surcharges applied at checkout.
type OrderFees struct {
	Takeaway int `json:"takeaway"`
	Delivery int `json:"delivery"`
}

// Order is a placed order. IDs are caller-supplied ("ORD-..." by
// convention) and the store does not enforce uniqueness.
type Order struct {
	ID       string      `json:"id"`
	Customer Customer    `json:"customer"`
	Items    []OrderItem `json:"items"`
	Fees     OrderFees   `json:"fees"`
	Total    int         `json:"total"`
	Status   OrderStatus `json:"status"`
	// Date is the RFC 3339 timestamp supplied by the client at creation.
	Date string `json:"date"`
}
