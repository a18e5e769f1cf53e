package repository

import (
	"context"

	"github.com/mberkut/dishpatch/internal/domain/model"
)

// OrderRepository describes persistence operations with orders and their items.
type OrderRepository interface {
	// Create persists the order together with all of its items inside one
	// transaction; either everything is stored or nothing is.
	Create(ctx context.Context, order *model.Order) (*model.Order, error)

	// GetByID loads an order. With withRestaurant set the restaurant
	// relation is populated as well.
	GetByID(ctx context.Context, id int64, withRestaurant bool) (*model.Order, error)

	ListByCustomer(ctx context.Context, customerID int64, status *model.OrderStatus) ([]model.Order, error)
	ListByDriver(ctx context.Context, driverID int64, status *model.OrderStatus) ([]model.Order, error)

	// ListByOwner returns the orders of every restaurant the owner has,
	// flattened into one list. Status narrowing is done by the caller.
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Order, error)

	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error

	// AssignDriver sets the driver only when no driver is assigned yet.
	// Returns ErrDriverTaken when the slot is already occupied.
	AssignDriver(ctx context.Context, orderID, driverID int64) error
}
