package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/mberkut/dishpatch/internal/domain/errors"
	"github.com/mberkut/dishpatch/internal/domain/model"
	"github.com/mberkut/dishpatch/internal/domain/repository"
)

// promotionPeriod is how long a paid promotion lasts.
const promotionPeriod = 7 * 24 * time.Hour

// RestaurantUseCase covers the owner-side catalog: restaurants, dishes and
// promotion payments.
type RestaurantUseCase struct {
	restaurants repository.RestaurantRepository
	dishes      repository.DishRepository
	payments    repository.PaymentRepository
}

// NewRestaurantUseCase constructs RestaurantUseCase.
func NewRestaurantUseCase(
	restaurants repository.RestaurantRepository,
	dishes repository.DishRepository,
	payments repository.PaymentRepository,
) *RestaurantUseCase {
	return &RestaurantUseCase{restaurants: restaurants, dishes: dishes, payments: payments}
}

// CreateRestaurant registers a restaurant owned by the caller.
func (u *RestaurantUseCase) CreateRestaurant(ctx context.Context, owner model.User, name, address string) (*model.Restaurant, error) {
	return u.restaurants.Create(ctx, owner.ID, name, address)
}

// CreateDish adds a dish to one of the caller's restaurants.
func (u *RestaurantUseCase) CreateDish(ctx context.Context, owner model.User, dish *model.Dish) (*model.Dish, error) {
	restaurant, err := u.restaurants.GetByID(ctx, dish.RestaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant.OwnerID != owner.ID {
		return nil, domainErrors.ErrNotOwner
	}
	return u.dishes.Create(ctx, dish)
}

// Promote records a promotion payment and marks the restaurant promoted for
// the standard period.
func (u *RestaurantUseCase) Promote(ctx context.Context, owner model.User, restaurantID int64) (*model.Payment, error) {
	restaurant, err := u.restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant.OwnerID != owner.ID {
		return nil, domainErrors.ErrNotOwner
	}

	payment, err := u.payments.Create(ctx, owner.ID, restaurantID, uuid.NewString())
	if err != nil {
		return nil, err
	}
	until := time.Now().Add(promotionPeriod)
	if err := u.restaurants.SetPromoted(ctx, restaurantID, until); err != nil {
		return nil, err
	}
	return payment, nil
}

// ClearExpiredPromotions drops the promoted flag on restaurants whose paid
// period ended; used by the background sweeper.
func (u *RestaurantUseCase) ClearExpiredPromotions(ctx context.Context) (int64, error) {
	return u.restaurants.ClearExpiredPromotions(ctx, time.Now())
}
