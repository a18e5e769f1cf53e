package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/mberkut/dishpatch/internal/domain/errors"
	"github.com/mberkut/dishpatch/internal/domain/model"
	"github.com/mberkut/dishpatch/internal/domain/repository"
	"github.com/mberkut/dishpatch/internal/pkg/auth"
)

// AuthUseCase implements account registration and bearer-token resolution.
type AuthUseCase struct {
	users    repository.UserRepository
	hasher   auth.PasswordHasher
	strategy auth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher auth.PasswordHasher, strategy auth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, strategy: strategy}
}

// Register creates an account with the given role and issues a token.
func (u *AuthUseCase) Register(ctx context.Context, email, password string, role model.UserRole) (*model.User, string, error) {
	if !role.Valid() {
		return nil, "", domainErrors.ErrInvalidCredentials
	}
	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}
	user, err := u.users.Create(ctx, email, hash, role)
	if err != nil {
		return nil, "", err
	}
	token, err := u.strategy.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Authenticate verifies credentials and issues a token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}
	token, err := u.strategy.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ResolveActor turns an opaque bearer token into the acting user.
func (u *AuthUseCase) ResolveActor(ctx context.Context, token string) (*model.User, error) {
	userID, err := u.strategy.ParseToken(token)
	if err != nil {
		return nil, err
	}
	return u.users.GetByID(ctx, userID)
}
