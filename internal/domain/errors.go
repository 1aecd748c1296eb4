package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials indicates the session/pwd pair matches no cart.
	ErrInvalidCredentials = errors.New("invalid session credentials")

	// ErrEmptyCart indicates an order submission with nothing to submit.
	ErrEmptyCart = errors.New("cart is empty")
)
