package dto

// CreateRestaurantRequest describes the payload for registering a restaurant.
type CreateRestaurantRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// CreateRestaurantResponse reports the identifier of a created restaurant.
type CreateRestaurantResponse struct {
	OK           bool   `json:"ok"`
	Error        string `json:"error,omitempty"`
	RestaurantID int64  `json:"restaurant_id,omitempty"`
}

// DishChoiceRequest is one selectable value inside a dish option.
type DishChoiceRequest struct {
	Name  string `json:"name"`
	Extra *int64 `json:"extra,omitempty"`
}

// DishOptionRequest describes a configurable dish option.
type DishOptionRequest struct {
	Name    string              `json:"name"`
	Extra   *int64              `json:"extra,omitempty"`
	Choices []DishChoiceRequest `json:"choices,omitempty"`
}

// CreateDishRequest describes the payload for adding a dish to a menu.
type CreateDishRequest struct {
	RestaurantID int64               `json:"restaurant_id"`
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	Price        int64               `json:"price"`
	Options      []DishOptionRequest `json:"options,omitempty"`
}

// CreateDishResponse reports the identifier of a created dish.
type CreateDishResponse struct {
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
	DishID int64  `json:"dish_id,omitempty"`
}

// PromoteResponse reports the recorded promotion payment.
type PromoteResponse struct {
	OK            bool   `json:"ok"`
	Error         string `json:"error,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
}
