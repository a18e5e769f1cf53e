package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mberkut/dishpatch/internal/access"
	domainErrors "github.com/mberkut/dishpatch/internal/domain/errors"
	"github.com/mberkut/dishpatch/internal/domain/model"
	"github.com/mberkut/dishpatch/internal/domain/repository"
	"github.com/mberkut/dishpatch/internal/pricing"
	"github.com/mberkut/dishpatch/internal/pubsub"
)

// Notifier delivers fire-and-forget notifications about order events to an
// outbound channel (email, webhook). Failures never affect order processing.
type Notifier interface {
	OrderCreated(ctx context.Context, order model.Order)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) OrderCreated(context.Context, model.Order) {}

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	DishID  int64
	Options []model.ItemOption
}

// OrderUseCase implements the order lifecycle: creation with price
// computation, role-scoped queries, status transitions, driver assignment
// and event fan-out.
type OrderUseCase struct {
	orders      repository.OrderRepository
	restaurants repository.RestaurantRepository
	dishes      repository.DishRepository
	broker      *pubsub.Broker
	notifier    Notifier
	logger      *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	restaurants repository.RestaurantRepository,
	dishes repository.DishRepository,
	broker *pubsub.Broker,
	notifier Notifier,
	logger *slog.Logger,
) *OrderUseCase {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &OrderUseCase{
		orders:      orders,
		restaurants: restaurants,
		dishes:      dishes,
		broker:      broker,
		notifier:    notifier,
		logger:      logger,
	}
}

// Create validates the requested items against the restaurant's menu,
// computes the total and persists the order atomically. Only clients place
// orders. A single missing dish aborts the whole order. On success a
// pending-order event carrying the restaurant owner's id is published.
func (u *OrderUseCase) Create(ctx context.Context, customer model.User, restaurantID int64, items []OrderItemInput) (*model.Order, error) {
	if customer.Role != model.RoleClient {
		return nil, domainErrors.ErrCannotEditOrder
	}
	if len(items) == 0 {
		return nil, domainErrors.ErrEmptyOrder
	}

	restaurant, err := u.restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, u.storageErr(err, "load restaurant")
	}

	var (
		orderItems []model.OrderItem
		prices     []int64
	)
	for _, item := range items {
		dish, err := u.dishes.GetByID(ctx, item.DishID)
		if err != nil {
			return nil, u.storageErr(err, "load dish")
		}
		dishID := dish.ID
		prices = append(prices, pricing.ItemPrice(dish, item.Options))
		orderItems = append(orderItems, model.OrderItem{DishID: &dishID, Options: item.Options})
	}
	total := pricing.OrderTotal(prices)

	order := &model.Order{
		CustomerID:   &customer.ID,
		RestaurantID: &restaurantID,
		Items:        orderItems,
		Total:        &total,
		Status:       model.OrderStatusPending,
	}
	created, err := u.orders.Create(ctx, order)
	if err != nil {
		return nil, u.storageErr(err, "persist order")
	}

	u.broker.Publish(pubsub.TopicPendingOrders, pubsub.Event{Order: *created, OwnerID: restaurant.OwnerID})
	go u.notifier.OrderCreated(context.WithoutCancel(ctx), *created)
	return created, nil
}

// List returns the orders visible to the actor, optionally narrowed by
// status. Owners get the orders of all their restaurants flattened into one
// list; their status filter is applied in memory after flattening.
func (u *OrderUseCase) List(ctx context.Context, actor model.User, status *model.OrderStatus) ([]model.Order, error) {
	switch actor.Role {
	case model.RoleClient:
		orders, err := u.orders.ListByCustomer(ctx, actor.ID, status)
		return orders, u.storageErr(err, "list customer orders")
	case model.RoleDelivery:
		orders, err := u.orders.ListByDriver(ctx, actor.ID, status)
		return orders, u.storageErr(err, "list driver orders")
	case model.RoleOwner:
		orders, err := u.orders.ListByOwner(ctx, actor.ID)
		if err != nil {
			return nil, u.storageErr(err, "list owner orders")
		}
		if status == nil {
			return orders, nil
		}
		filtered := orders[:0]
		for _, o := range orders {
			if o.Status == *status {
				filtered = append(filtered, o)
			}
		}
		return filtered, nil
	}
	return nil, domainErrors.ErrCannotSeeOrder
}

// Get loads one order and enforces the visibility guard.
func (u *OrderUseCase) Get(ctx context.Context, actor model.User, orderID int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID, true)
	if err != nil {
		return nil, u.storageErr(err, "load order")
	}
	if !access.CanSee(actor, order) {
		return nil, domainErrors.ErrCannotSeeOrder
	}
	return order, nil
}

// Edit moves the order to the target status when the actor may both see the
// order and set that status. Every successful edit publishes an order-update
// event; reaching Cooked additionally fans out on the cooked-orders topic
// for drivers awaiting pickup-ready orders.
func (u *OrderUseCase) Edit(ctx context.Context, actor model.User, orderID int64, status model.OrderStatus) error {
	order, err := u.orders.GetByID(ctx, orderID, true)
	if err != nil {
		return u.storageErr(err, "load order")
	}
	if !access.CanSee(actor, order) {
		return domainErrors.ErrCannotSeeOrder
	}
	if !access.CanSetStatus(actor.Role, status) {
		return domainErrors.ErrCannotEditOrder
	}

	if err := u.orders.UpdateStatus(ctx, orderID, status); err != nil {
		return u.storageErr(err, "update order status")
	}

	updated := *order
	updated.Status = status
	if status == model.OrderStatusCooked {
		u.broker.Publish(pubsub.TopicCookedOrders, pubsub.Event{Order: updated})
	}
	u.broker.Publish(pubsub.TopicOrderUpdates, pubsub.Event{Order: updated})
	return nil
}

// Take assigns the driver to an unclaimed order. Only delivery users may
// claim orders. The persist step is a conditional update, so under a race
// exactly one driver wins and the rest observe ErrDriverTaken.
func (u *OrderUseCase) Take(ctx context.Context, driver model.User, orderID int64) error {
	if driver.Role != model.RoleDelivery {
		return domainErrors.ErrCannotEditOrder
	}
	order, err := u.orders.GetByID(ctx, orderID, false)
	if err != nil {
		return u.storageErr(err, "load order")
	}
	if order.DriverID != nil {
		return domainErrors.ErrDriverTaken
	}

	if err := u.orders.AssignDriver(ctx, orderID, driver.ID); err != nil {
		return u.storageErr(err, "assign driver")
	}

	updated, err := u.orders.GetByID(ctx, orderID, true)
	if err != nil {
		return u.storageErr(err, "reload order")
	}
	u.broker.Publish(pubsub.TopicOrderUpdates, pubsub.Event{Order: *updated})
	return nil
}

// PendingOrders opens the owner's stream of newly created orders for the
// owner's restaurants.
func (u *OrderUseCase) PendingOrders(owner model.User) *pubsub.Subscription {
	return u.broker.Subscribe(pubsub.TopicPendingOrders, func(ev pubsub.Event) bool {
		return ev.OwnerID == owner.ID
	})
}

// CookedOrders opens the stream of pickup-ready orders; every delivery
// subscriber sees every cooked order.
func (u *OrderUseCase) CookedOrders() *pubsub.Subscription {
	return u.broker.Subscribe(pubsub.TopicCookedOrders, nil)
}

// OrderUpdates opens a stream of updates for one order; events are delivered
// only when the subscriber is the order's customer, driver or restaurant
// owner at the time of the event.
func (u *OrderUseCase) OrderUpdates(actor model.User, watchOrderID int64) *pubsub.Subscription {
	return u.broker.Subscribe(pubsub.TopicOrderUpdates, func(ev pubsub.Event) bool {
		if ev.Order.ID != watchOrderID {
			return false
		}
		order := ev.Order
		return access.CanSee(actor, &order)
	})
}

// storageErr passes domain sentinels through untouched and logs everything
// else in full while keeping the sentinel-free error for the caller to wrap
// into a generic message.
func (u *OrderUseCase) storageErr(err error, op string) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, domainErrors.ErrRestaurantNotFound),
		errors.Is(err, domainErrors.ErrDishNotFound),
		errors.Is(err, domainErrors.ErrOrderNotFound),
		errors.Is(err, domainErrors.ErrDriverTaken),
		errors.Is(err, domainErrors.ErrNotFound):
		return err
	}
	u.logger.Error("order storage failure", slog.String("op", op), slog.String("error", err.Error()))
	return err
}
