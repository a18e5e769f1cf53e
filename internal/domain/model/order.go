package model

import "time"

// OrderStatus describes the order lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusCooking   OrderStatus = "Cooking"
	OrderStatusCooked    OrderStatus = "Cooked"
	OrderStatusPickedUp  OrderStatus = "PickedUp"
	OrderStatusDelivered OrderStatus = "Delivered"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCooking, OrderStatusCooked, OrderStatusPickedUp, OrderStatusDelivered:
		return true
	}
	return false
}

// ItemOption is an immutable snapshot of one option selection recorded at
// order time. It deliberately holds plain values, not references to the
// dish's live option catalog, so later menu edits never rewrite history.
type ItemOption struct {
	Name   string  `json:"name"`
	Choice *string `json:"choice,omitempty"`
}

// OrderItem is one line of an order: a dish reference plus the option
// snapshot. Items are never edited after creation. DishID is nullable for
// the same reason the order references are: removing a dish from the menu
// must not rewrite order history.
type OrderItem struct {
	ID      int64
	DishID  *int64
	Options []ItemOption
}

// Order is the root aggregate of a purchase. Customer, driver and restaurant
// references are nullable: deleting the referenced entity clears the
// reference but never deletes the order.
type Order struct {
	ID           int64
	CustomerID   *int64
	DriverID     *int64
	RestaurantID *int64
	Items        []OrderItem
	Total        *int64
	Status       OrderStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Restaurant is populated only when the order was loaded with its
	// restaurant relation; visibility checks for owners need it.
	Restaurant *Restaurant
}
