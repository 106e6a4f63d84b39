package domain

import "time"

// PaymentMethod selects how an order is settled.
type PaymentMethod string

const (
	PaymentMethodCOD    PaymentMethod = "COD"
	PaymentMethodOnline PaymentMethod = "ONLINE"
)

// ParsePaymentMethod validates a raw method string from the boundary.
func ParsePaymentMethod(raw string) (PaymentMethod, bool) {
	switch PaymentMethod(raw) {
	case PaymentMethodCOD:
		return PaymentMethodCOD, true
	case PaymentMethodOnline:
		return PaymentMethodOnline, true
	}
	return "", false
}

const (
	OrderStatusPlaced = "Placed"
	OrderStatusPaid   = "Paid"
)

// DeliveryDetails is the checkout form input attached to an order.
type DeliveryDetails struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// Order is the durable result of a checkout. TotalCents is snapshotted at
// creation and never recomputed; only Status changes afterwards.
type Order struct {
	ID            string        `json:"id"`
	UserID        string        `json:"userId"`
	FullName      string        `json:"fullName"`
	Phone         string        `json:"phone"`
	Address       string        `json:"address"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	TotalCents    int64         `json:"totalCents"`
	Status        string        `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	Items         []OrderItem   `json:"items,omitempty"`
}

// OrderItem is a line within an order. PriceCents is the product's unit price
// at checkout time and is immune to later catalog price changes.
type OrderItem struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"orderId"`
	ProductID  string    `json:"productId"`
	PriceCents int64     `json:"priceCents"`
	Quantity   int       `json:"quantity"`
	CreatedAt  time.Time `json:"createdAt"`
}
