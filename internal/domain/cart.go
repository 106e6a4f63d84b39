package domain

import "time"

// Cart maps product ids to quantities. It lives on a session row as jsonb and
// must round-trip exactly; quantities are always >= 1, an entry at quantity 0
// is removed rather than stored.
type Cart map[string]int

// Add inserts the product or raises its quantity. Non-positive quantities are
// ignored so malformed boundary input can never create a zero entry.
func (c Cart) Add(productID string, quantity int) {
	if quantity <= 0 {
		return
	}
	c[productID] += quantity
}

// Increment raises the quantity of an existing entry by one. Absent entries
// are left alone.
func (c Cart) Increment(productID string) {
	if _, ok := c[productID]; !ok {
		return
	}
	c[productID]++
}

// Decrement lowers the quantity by one, deleting the entry when it reaches
// zero. Absent entries are left alone.
func (c Cart) Decrement(productID string) {
	qty, ok := c[productID]
	if !ok {
		return
	}
	if qty <= 1 {
		delete(c, productID)
		return
	}
	c[productID] = qty - 1
}

// Remove deletes the entry if present.
func (c Cart) Remove(productID string) {
	delete(c, productID)
}

func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

// CartLine is a cart entry resolved against the catalog for display and for
// feeding checkout. SubtotalCents is quantity times the current unit price.
type CartLine struct {
	Product       Product `json:"product"`
	Quantity      int     `json:"quantity"`
	SubtotalCents int64   `json:"subtotalCents"`
}

// CartView is a read-only resolved view of a session's cart.
type CartView struct {
	SessionID  string     `json:"sessionId"`
	Lines      []CartLine `json:"lines"`
	TotalCents int64      `json:"totalCents"`
}

// Session is the durable carrier of an anonymous browser's cart.
type Session struct {
	ID        string
	Cart      Cart
	CreatedAt time.Time
	UpdatedAt time.Time
}
