package model

import "time"

// Payment records an owner paying to promote a restaurant.
type Payment struct {
	ID            int64
	UserID        int64
	RestaurantID  int64
	TransactionID string
	CreatedAt     time.Time
}
