package repo

import "errors"

var (
	// ErrProductNotFound is returned when a product id has no matching record.
	ErrProductNotFound = errors.New("product not found")

	// ErrUserNotFound is returned when no user matches the given email.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when registering an email that already exists.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidQuantity is returned when a stock change would require a
	// negative quantity.
	ErrInvalidQuantity = errors.New("quantity must not be negative")
)
