package repository

import (
	"context"

	"github.com/mberkut/dishpatch/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string, role model.UserRole) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// PaymentRepository describes persistence operations for promotion payments.
type PaymentRepository interface {
	Create(ctx context.Context, userID, restaurantID int64, transactionID string) (*model.Payment, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Payment, error)
}
