package test

import (
	"context"
	"sync"

	"github.com/mberkut/dishpatch/internal/domain/model"
	"github.com/mberkut/dishpatch/internal/pubsub"
	"github.com/mberkut/dishpatch/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ResolveFn      func(context.Context, string) (*model.User, error)
	Actor          *model.User
}

// Register returns token for successful registration scenarios.
func (s *AuthFacadeStub) Register(ctx context.Context, email, password, role string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, password, role)
	}
	return "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s *AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return "token", nil
}

// ResolveActor returns the configured actor, defaulting to a client.
func (s *AuthFacadeStub) ResolveActor(ctx context.Context, token string) (*model.User, error) {
	if s.ResolveFn != nil {
		return s.ResolveFn(ctx, token)
	}
	if s.Actor != nil {
		return s.Actor, nil
	}
	return &model.User{ID: 1, Role: model.RoleClient}, nil
}

// OrderFacadeStub simulates order lifecycle operations.
type OrderFacadeStub struct {
	CreateFn func(context.Context, model.User, int64, []usecase.OrderItemInput) (*model.Order, error)
	OrdersFn func(context.Context, model.User, *model.OrderStatus) ([]model.Order, error)
	OrderFn  func(context.Context, model.User, int64) (*model.Order, error)
	EditFn   func(context.Context, model.User, int64, model.OrderStatus) error
	TakeFn   func(context.Context, model.User, int64) error
}

// CreateOrder returns the configured result or a minimal created order.
func (s *OrderFacadeStub) CreateOrder(ctx context.Context, actor model.User, restaurantID int64, items []usecase.OrderItemInput) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, actor, restaurantID, items)
	}
	return &model.Order{ID: 1, Status: model.OrderStatusPending}, nil
}

// Orders returns the configured listing.
func (s *OrderFacadeStub) Orders(ctx context.Context, actor model.User, status *model.OrderStatus) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, actor, status)
	}
	return nil, nil
}

// Order returns the configured order.
func (s *OrderFacadeStub) Order(ctx context.Context, actor model.User, orderID int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, actor, orderID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusPending}, nil
}

// EditOrder records/forwards a status change.
func (s *OrderFacadeStub) EditOrder(ctx context.Context, actor model.User, orderID int64, status model.OrderStatus) error {
	if s.EditFn != nil {
		return s.EditFn(ctx, actor, orderID, status)
	}
	return nil
}

// TakeOrder records/forwards a driver assignment.
func (s *OrderFacadeStub) TakeOrder(ctx context.Context, actor model.User, orderID int64) error {
	if s.TakeFn != nil {
		return s.TakeFn(ctx, actor, orderID)
	}
	return nil
}

// StreamFacadeStub hands out subscriptions for stream handler tests.
type StreamFacadeStub struct {
	PendingFn func(model.User) *pubsub.Subscription
	CookedFn  func() *pubsub.Subscription
	UpdatesFn func(model.User, int64) *pubsub.Subscription
}

// PendingOrders returns the configured subscription or nil.
func (s *StreamFacadeStub) PendingOrders(owner model.User) *pubsub.Subscription {
	if s.PendingFn != nil {
		return s.PendingFn(owner)
	}
	return nil
}

// CookedOrders returns the configured subscription or nil.
func (s *StreamFacadeStub) CookedOrders() *pubsub.Subscription {
	if s.CookedFn != nil {
		return s.CookedFn()
	}
	return nil
}

// OrderUpdates returns the configured subscription or nil.
func (s *StreamFacadeStub) OrderUpdates(actor model.User, orderID int64) *pubsub.Subscription {
	if s.UpdatesFn != nil {
		return s.UpdatesFn(actor, orderID)
	}
	return nil
}

// CatalogFacadeStub simulates owner-side catalog operations.
type CatalogFacadeStub struct {
	CreateRestaurantFn func(context.Context, model.User, string, string) (*model.Restaurant, error)
	CreateDishFn       func(context.Context, model.User, *model.Dish) (*model.Dish, error)
	PromoteFn          func(context.Context, model.User, int64) (*model.Payment, error)
}

// CreateRestaurant returns the configured restaurant.
func (s *CatalogFacadeStub) CreateRestaurant(ctx context.Context, owner model.User, name, address string) (*model.Restaurant, error) {
	if s.CreateRestaurantFn != nil {
		return s.CreateRestaurantFn(ctx, owner, name, address)
	}
	return &model.Restaurant{ID: 1, OwnerID: owner.ID, Name: name, Address: address}, nil
}

// CreateDish returns the configured dish.
func (s *CatalogFacadeStub) CreateDish(ctx context.Context, owner model.User, dish *model.Dish) (*model.Dish, error) {
	if s.CreateDishFn != nil {
		return s.CreateDishFn(ctx, owner, dish)
	}
	created := *dish
	created.ID = 1
	return &created, nil
}

// PromoteRestaurant returns the configured payment.
func (s *CatalogFacadeStub) PromoteRestaurant(ctx context.Context, owner model.User, restaurantID int64) (*model.Payment, error) {
	if s.PromoteFn != nil {
		return s.PromoteFn(ctx, owner, restaurantID)
	}
	return &model.Payment{ID: 1, UserID: owner.ID, RestaurantID: restaurantID, TransactionID: "tx"}, nil
}

// DeliveryFacadeStub aggregates facade stubs for HTTP layer tests.
type DeliveryFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	StreamFacadeStub
	CatalogFacadeStub
}

// PromotionFacadeStub records sweeper invocations.
type PromotionFacadeStub struct {
	ClearFn func(context.Context) (int64, error)

	mu    sync.Mutex
	Calls int
}

// ClearExpiredPromotions counts calls and forwards to the override if set.
func (s *PromotionFacadeStub) ClearExpiredPromotions(ctx context.Context) (int64, error) {
	s.mu.Lock()
	s.Calls++
	s.mu.Unlock()
	if s.ClearFn != nil {
		return s.ClearFn(ctx)
	}
	return 0, nil
}

// CallCount returns the number of recorded sweeps.
func (s *PromotionFacadeStub) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Calls
}
