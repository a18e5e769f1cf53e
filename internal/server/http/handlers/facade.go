package handlers

import (
	"context"

	"github.com/mberkut/dishpatch/internal/domain/model"
	"github.com/mberkut/dishpatch/internal/pubsub"
	"github.com/mberkut/dishpatch/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password, role string) (string, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	ResolveActor(ctx context.Context, token string) (*model.User, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, actor model.User, restaurantID int64, items []usecase.OrderItemInput) (*model.Order, error)
	Orders(ctx context.Context, actor model.User, status *model.OrderStatus) ([]model.Order, error)
	Order(ctx context.Context, actor model.User, orderID int64) (*model.Order, error)
	EditOrder(ctx context.Context, actor model.User, orderID int64, status model.OrderStatus) error
	TakeOrder(ctx context.Context, actor model.User, orderID int64) error
}

// StreamFacade hands out event subscriptions for the SSE endpoints.
type StreamFacade interface {
	PendingOrders(owner model.User) *pubsub.Subscription
	CookedOrders() *pubsub.Subscription
	OrderUpdates(actor model.User, orderID int64) *pubsub.Subscription
}

// CatalogFacade provides owner-side restaurant and menu operations.
type CatalogFacade interface {
	CreateRestaurant(ctx context.Context, owner model.User, name, address string) (*model.Restaurant, error)
	CreateDish(ctx context.Context, owner model.User, dish *model.Dish) (*model.Dish, error)
	PromoteRestaurant(ctx context.Context, owner model.User, restaurantID int64) (*model.Payment, error)
}

// DeliveryFacade aggregates the full set of operations used across handlers.
type DeliveryFacade interface {
	AuthFacade
	OrderFacade
	StreamFacade
	CatalogFacade
}
