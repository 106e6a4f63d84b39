package order

import (
	"context"
	"errors"
	"io"
	"log"
	"sort"

	"github.com/Bhargavikambam/GreenBag/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) CheckoutFromCart(ctx context.Context, in CheckoutInput) (*domain.Order, *domain.Payment, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback(ctx)

	cart := domain.Cart{}
	err = tx.QueryRow(ctx, `
SELECT cart
FROM sessions
WHERE id = $1
FOR UPDATE
`, in.SessionID).Scan(&cart)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, domain.ErrEmptyCart
		}
		return nil, nil, err
	}
	if cart.IsEmpty() {
		return nil, nil, domain.ErrEmptyCart
	}

	// Stable line order keeps product row locking deterministic across
	// concurrent checkouts.
	productIDs := make([]string, 0, len(cart))
	for id := range cart {
		productIDs = append(productIDs, id)
	}
	sort.Strings(productIDs)

	type line struct {
		productID  string
		priceCents int64
		quantity   int
	}
	lines := make([]line, 0, len(productIDs))
	var totalCents int64
	for _, productID := range productIDs {
		qty := cart[productID]
		var priceCents int64
		if err := tx.QueryRow(ctx, `
SELECT price_cents
FROM products
WHERE id = $1
`, productID).Scan(&priceCents); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, nil, domain.ErrNotFound
			}
			return nil, nil, err
		}
		lines = append(lines, line{productID: productID, priceCents: priceCents, quantity: qty})
		totalCents += priceCents * int64(qty)
	}

	var order domain.Order
	if err := tx.QueryRow(ctx, `
INSERT INTO orders (user_id, full_name, phone, address, payment_method, total_cents, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id::text, created_at
`, in.UserID, in.Delivery.FullName, in.Delivery.Phone, in.Delivery.Address, string(in.Method), totalCents, domain.OrderStatusPlaced).Scan(&order.ID, &order.CreatedAt); err != nil {
		return nil, nil, err
	}
	order.UserID = in.UserID
	order.FullName = in.Delivery.FullName
	order.Phone = in.Delivery.Phone
	order.Address = in.Delivery.Address
	order.PaymentMethod = in.Method
	order.TotalCents = totalCents
	order.Status = domain.OrderStatusPlaced

	for _, l := range lines {
		cmd, err := tx.Exec(ctx, `
UPDATE products
SET stock = stock - $2
WHERE id = $1 AND stock >= $2
`, l.productID, l.quantity)
		if err != nil {
			return nil, nil, err
		}
		if cmd.RowsAffected() == 0 {
			return nil, nil, domain.ErrInsufficientStock
		}

		var item domain.OrderItem
		if err := tx.QueryRow(ctx, `
INSERT INTO order_items (order_id, product_id, price_cents, quantity)
VALUES ($1, $2, $3, $4)
RETURNING id::text, created_at
`, order.ID, l.productID, l.priceCents, l.quantity).Scan(&item.ID, &item.CreatedAt); err != nil {
			return nil, nil, err
		}
		item.OrderID = order.ID
		item.ProductID = l.productID
		item.PriceCents = l.priceCents
		item.Quantity = l.quantity
		order.Items = append(order.Items, item)
	}

	// The non-empty guard makes the clear part of the same race: a concurrent
	// checkout that lost the row lock re-reads an empty cart above instead of
	// ordering the same lines twice.
	cmd, err := tx.Exec(ctx, `
UPDATE sessions
SET cart = '{}'::jsonb, updated_at = now()
WHERE id = $1 AND cart <> '{}'::jsonb
`, in.SessionID)
	if err != nil {
		return nil, nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, nil, domain.ErrEmptyCart
	}

	var payment *domain.Payment
	if in.Method == domain.PaymentMethodOnline {
		payment = &domain.Payment{
			OrderID:     order.ID,
			UserID:      in.UserID,
			Method:      in.Method,
			Status:      domain.PaymentStatusPending,
			AmountCents: totalCents,
		}
		if err := tx.QueryRow(ctx, `
INSERT INTO payments (order_id, user_id, method, status, amount_cents)
VALUES ($1, $2, $3, $4, $5)
RETURNING id::text, created_at
`, payment.OrderID, payment.UserID, string(payment.Method), string(payment.Status), payment.AmountCents).Scan(&payment.ID, &payment.CreatedAt); err != nil {
			return nil, nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, err
	}

	r.logger.Printf("order repo: checkout user_id=%s order_id=%s total_cents=%d lines=%d method=%s",
		in.UserID, order.ID, totalCents, len(lines), in.Method)
	return &order, payment, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	const q = `
SELECT id::text, user_id::text, full_name, phone, address, payment_method, total_cents, status, created_at
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var o domain.Order
		var method string
		if err := rows.Scan(&o.ID, &o.UserID, &o.FullName, &o.Phone, &o.Address, &method, &o.TotalCents, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.PaymentMethod = domain.PaymentMethod(method)
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetForUser(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	const q = `
SELECT id::text, user_id::text, full_name, phone, address, payment_method, total_cents, status, created_at
FROM orders
WHERE user_id = $1 AND id = $2
`
	var o domain.Order
	var method string
	err := r.pool.QueryRow(ctx, q, userID, orderID).Scan(&o.ID, &o.UserID, &o.FullName, &o.Phone, &o.Address, &method, &o.TotalCents, &o.Status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	o.PaymentMethod = domain.PaymentMethod(method)

	const itemsQuery = `
SELECT id::text, order_id::text, product_id::text, price_cents, quantity, created_at
FROM order_items
WHERE order_id = $1
ORDER BY created_at ASC
`
	rows, err := r.pool.Query(ctx, itemsQuery, o.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.PriceCents, &item.Quantity, &item.CreatedAt); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &o, nil
}
