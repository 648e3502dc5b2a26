package caja

import "errors"

// Error kinds returned by catalog, cart and ledger operations. Call sites
// wrap them with fmt.Errorf("...: %w", ...) to add context, so callers can
// test the kind with errors.Is.
//
// Every operation that returns an error leaves all entities unchanged.
var (
	// ErrValidation reports malformed input: an empty product name, a
	// negative or non-finite amount, a non-positive quantity.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound reports a product ID, cart line or sale index that does
	// not exist.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientStock reports a requested quantity that exceeds the
	// available stock at check time.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrEmptyCart reports a commit attempted on a cart with no lines.
	ErrEmptyCart = errors.New("empty cart")
)
