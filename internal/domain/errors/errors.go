package errors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrDishNotFound       = errors.New("dish not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrCannotSeeOrder     = errors.New("cannot see order")
	ErrCannotEditOrder    = errors.New("cannot edit order")
	ErrDriverTaken        = errors.New("order already has a driver")
	ErrEmptyOrder         = errors.New("order has no items")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotOwner           = errors.New("not the owner")
)
