package dto

import "time"

// ItemOptionRequest is a single option selection on an ordered dish.
type ItemOptionRequest struct {
	Name   string  `json:"name"`
	Choice *string `json:"choice,omitempty"`
}

// OrderItemRequest references a dish with its selected options.
type OrderItemRequest struct {
	DishID  int64               `json:"dish_id"`
	Options []ItemOptionRequest `json:"options,omitempty"`
}

// CreateOrderRequest describes the createOrder payload.
type CreateOrderRequest struct {
	RestaurantID int64              `json:"restaurant_id"`
	Items        []OrderItemRequest `json:"items"`
}

// EditOrderRequest carries the target status for editOrder.
type EditOrderRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse mirrors a persisted order item.
type OrderItemResponse struct {
	ID      int64               `json:"id"`
	DishID  *int64              `json:"dish_id,omitempty"`
	Options []ItemOptionRequest `json:"options,omitempty"`
}

// OrderResponse mirrors a persisted order.
type OrderResponse struct {
	ID           int64               `json:"id"`
	CustomerID   *int64              `json:"customer_id,omitempty"`
	DriverID     *int64              `json:"driver_id,omitempty"`
	RestaurantID *int64              `json:"restaurant_id,omitempty"`
	Total        *int64              `json:"total,omitempty"`
	Status       string              `json:"status"`
	Items        []OrderItemResponse `json:"items,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// StatusResponse is the bare ok/error envelope used by mutations.
type StatusResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// CreateOrderResponse reports the identifier of a created order.
type CreateOrderResponse struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
	OrderID int64  `json:"order_id,omitempty"`
}

// GetOrderResponse wraps a single order lookup.
type GetOrderResponse struct {
	OK    bool           `json:"ok"`
	Error string         `json:"error,omitempty"`
	Order *OrderResponse `json:"order,omitempty"`
}

// OrdersResponse wraps an order listing.
type OrdersResponse struct {
	OK     bool            `json:"ok"`
	Error  string          `json:"error,omitempty"`
	Orders []OrderResponse `json:"orders"`
}
