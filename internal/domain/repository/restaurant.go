package repository

import (
	"context"
	"time"

	"github.com/mberkut/dishpatch/internal/domain/model"
)

// RestaurantRepository describes persistence operations for restaurants.
type RestaurantRepository interface {
	Create(ctx context.Context, ownerID int64, name, address string) (*model.Restaurant, error)
	GetByID(ctx context.Context, id int64) (*model.Restaurant, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Restaurant, error)
	SetPromoted(ctx context.Context, id int64, until time.Time) error

	// ClearExpiredPromotions drops the promoted flag on every restaurant
	// whose promotion deadline passed; returns the number of rows touched.
	ClearExpiredPromotions(ctx context.Context, now time.Time) (int64, error)
}

// DishRepository describes persistence operations for menu dishes.
type DishRepository interface {
	Create(ctx context.Context, dish *model.Dish) (*model.Dish, error)
	GetByID(ctx context.Context, id int64) (*model.Dish, error)
}
