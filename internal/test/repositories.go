package test

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/mberkut/dishpatch/internal/domain/errors"
	"github.com/mberkut/dishpatch/internal/domain/model"
)

// UserRepositoryStub keeps users in memory for wiring tests.
type UserRepositoryStub struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*model.User
	byMail map[string]*model.User
}

// NewUserRepositoryStub constructs an empty in-memory user repository.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		nextID: 1,
		byID:   make(map[int64]*model.User),
		byMail: make(map[string]*model.User),
	}
}

// Create stores a user, rejecting duplicate emails.
func (s *UserRepositoryStub) Create(_ context.Context, email, passwordHash string, role model.UserRole) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byMail[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := &model.User{ID: s.nextID, Email: email, PasswordHash: passwordHash, Role: role, CreatedAt: time.Now()}
	s.nextID++
	s.byID[user.ID] = user
	s.byMail[email] = user
	return user, nil
}

// GetByEmail looks up a stored user.
func (s *UserRepositoryStub) GetByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.byMail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID looks up a stored user.
func (s *UserRepositoryStub) GetByID(_ context.Context, id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.byID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// RestaurantRepositoryStub returns canned restaurants.
type RestaurantRepositoryStub struct {
	Restaurant *model.Restaurant
	Cleared    int64
}

func (s *RestaurantRepositoryStub) Create(_ context.Context, ownerID int64, name, address string) (*model.Restaurant, error) {
	return &model.Restaurant{ID: 1, OwnerID: ownerID, Name: name, Address: address}, nil
}

func (s *RestaurantRepositoryStub) GetByID(_ context.Context, id int64) (*model.Restaurant, error) {
	if s.Restaurant != nil {
		return s.Restaurant, nil
	}
	return nil, domainErrors.ErrRestaurantNotFound
}

func (s *RestaurantRepositoryStub) ListByOwner(context.Context, int64) ([]model.Restaurant, error) {
	if s.Restaurant != nil {
		return []model.Restaurant{*s.Restaurant}, nil
	}
	return nil, nil
}

func (s *RestaurantRepositoryStub) SetPromoted(context.Context, int64, time.Time) error {
	return nil
}

func (s *RestaurantRepositoryStub) ClearExpiredPromotions(context.Context, time.Time) (int64, error) {
	return s.Cleared, nil
}

// DishRepositoryStub returns canned dishes.
type DishRepositoryStub struct {
	Dish *model.Dish
}

func (s *DishRepositoryStub) Create(_ context.Context, dish *model.Dish) (*model.Dish, error) {
	created := *dish
	created.ID = 1
	return &created, nil
}

func (s *DishRepositoryStub) GetByID(context.Context, int64) (*model.Dish, error) {
	if s.Dish != nil {
		return s.Dish, nil
	}
	return nil, domainErrors.ErrDishNotFound
}

// OrderRepositoryStub returns canned orders.
type OrderRepositoryStub struct {
	Order *model.Order
}

func (s *OrderRepositoryStub) Create(_ context.Context, order *model.Order) (*model.Order, error) {
	created := *order
	created.ID = 1
	return &created, nil
}

func (s *OrderRepositoryStub) GetByID(context.Context, int64, bool) (*model.Order, error) {
	if s.Order != nil {
		return s.Order, nil
	}
	return nil, domainErrors.ErrOrderNotFound
}

func (s *OrderRepositoryStub) ListByCustomer(context.Context, int64, *model.OrderStatus) ([]model.Order, error) {
	return nil, nil
}

func (s *OrderRepositoryStub) ListByDriver(context.Context, int64, *model.OrderStatus) ([]model.Order, error) {
	return nil, nil
}

func (s *OrderRepositoryStub) ListByOwner(context.Context, int64) ([]model.Order, error) {
	return nil, nil
}

func (s *OrderRepositoryStub) UpdateStatus(context.Context, int64, model.OrderStatus) error {
	return nil
}

func (s *OrderRepositoryStub) AssignDriver(context.Context, int64, int64) error {
	return nil
}

// PaymentRepositoryStub returns canned payments.
type PaymentRepositoryStub struct{}

func (s *PaymentRepositoryStub) Create(_ context.Context, userID, restaurantID int64, transactionID string) (*model.Payment, error) {
	return &model.Payment{ID: 1, UserID: userID, RestaurantID: restaurantID, TransactionID: transactionID}, nil
}

func (s *PaymentRepositoryStub) ListByUser(context.Context, int64) ([]model.Payment, error) {
	return nil, nil
}
