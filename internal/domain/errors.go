package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness constraint was violated.
	ErrAlreadyExists = errors.New("already exists")
	// ErrEmptyCart indicates checkout was attempted with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidInput indicates malformed input rejected before any write.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidTransition indicates a state change from a terminal state.
	ErrInvalidTransition = errors.New("invalid state transition")
	// ErrInsufficientStock indicates a cart line exceeds available stock.
	ErrInsufficientStock = errors.New("insufficient stock")
)
