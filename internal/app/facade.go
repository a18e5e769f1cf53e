package app

import (
	"context"

	domainErrors "github.com/mberkut/dishpatch/internal/domain/errors"
	"github.com/mberkut/dishpatch/internal/domain/model"
	"github.com/mberkut/dishpatch/internal/pubsub"
	"github.com/mberkut/dishpatch/internal/usecase"
)

// DeliveryFacade aggregates the use cases behind the surfaces that consume
// them: HTTP handlers, middleware and the background sweeper.
type DeliveryFacade struct {
	auth        *usecase.AuthUseCase
	orders      *usecase.OrderUseCase
	restaurants *usecase.RestaurantUseCase
}

func NewDeliveryFacade(auth *usecase.AuthUseCase, orders *usecase.OrderUseCase, restaurants *usecase.RestaurantUseCase) *DeliveryFacade {
	return &DeliveryFacade{auth: auth, orders: orders, restaurants: restaurants}
}

func (f *DeliveryFacade) Register(ctx context.Context, email, password, role string) (string, error) {
	userRole := model.UserRole(role)
	if !userRole.Valid() {
		return "", domainErrors.ErrInvalidCredentials
	}
	_, token, err := f.auth.Register(ctx, email, password, userRole)
	return token, err
}

func (f *DeliveryFacade) Authenticate(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, email, password)
	return token, err
}

func (f *DeliveryFacade) ResolveActor(ctx context.Context, token string) (*model.User, error) {
	return f.auth.ResolveActor(ctx, token)
}

func (f *DeliveryFacade) CreateOrder(ctx context.Context, actor model.User, restaurantID int64, items []usecase.OrderItemInput) (*model.Order, error) {
	return f.orders.Create(ctx, actor, restaurantID, items)
}

func (f *DeliveryFacade) Orders(ctx context.Context, actor model.User, status *model.OrderStatus) ([]model.Order, error) {
	return f.orders.List(ctx, actor, status)
}

func (f *DeliveryFacade) Order(ctx context.Context, actor model.User, orderID int64) (*model.Order, error) {
	return f.orders.Get(ctx, actor, orderID)
}

func (f *DeliveryFacade) EditOrder(ctx context.Context, actor model.User, orderID int64, status model.OrderStatus) error {
	return f.orders.Edit(ctx, actor, orderID, status)
}

func (f *DeliveryFacade) TakeOrder(ctx context.Context, actor model.User, orderID int64) error {
	return f.orders.Take(ctx, actor, orderID)
}

func (f *DeliveryFacade) PendingOrders(owner model.User) *pubsub.Subscription {
	return f.orders.PendingOrders(owner)
}

func (f *DeliveryFacade) CookedOrders() *pubsub.Subscription {
	return f.orders.CookedOrders()
}

func (f *DeliveryFacade) OrderUpdates(actor model.User, orderID int64) *pubsub.Subscription {
	return f.orders.OrderUpdates(actor, orderID)
}

func (f *DeliveryFacade) CreateRestaurant(ctx context.Context, owner model.User, name, address string) (*model.Restaurant, error) {
	return f.restaurants.CreateRestaurant(ctx, owner, name, address)
}

func (f *DeliveryFacade) CreateDish(ctx context.Context, owner model.User, dish *model.Dish) (*model.Dish, error) {
	return f.restaurants.CreateDish(ctx, owner, dish)
}

func (f *DeliveryFacade) PromoteRestaurant(ctx context.Context, owner model.User, restaurantID int64) (*model.Payment, error) {
	return f.restaurants.Promote(ctx, owner, restaurantID)
}

func (f *DeliveryFacade) ClearExpiredPromotions(ctx context.Context) (int64, error) {
	return f.restaurants.ClearExpiredPromotions(ctx)
}
