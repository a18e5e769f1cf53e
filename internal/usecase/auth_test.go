package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/mberkut/dishpatch/internal/domain/errors"
	"github.com/mberkut/dishpatch/internal/domain/model"
	"github.com/mberkut/dishpatch/internal/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	createFn     func(context.Context, string, string, model.UserRole) (*model.User, error)
	getByEmailFn func(context.Context, string) (*model.User, error)
	getByIDFn    func(context.Context, int64) (*model.User, error)
}

func (s *stubUserRepo) Create(ctx context.Context, email, passwordHash string, role model.UserRole) (*model.User, error) {
	if s.createFn == nil {
		panic("unexpected Create call")
	}
	return s.createFn(ctx, email, passwordHash, role)
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.getByEmailFn == nil {
		panic("unexpected GetByEmail call")
	}
	return s.getByEmailFn(ctx, email)
}

func (s *stubUserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.getByIDFn == nil {
		panic("unexpected GetByID call")
	}
	return s.getByIDFn(ctx, id)
}

func newAuthUseCase(users *stubUserRepo) *AuthUseCase {
	strategy := auth.NewHMACStrategy("test-secret", auth.Options{})
	return NewAuthUseCase(users, auth.NewBcryptHasher(bcrypt.MinCost), strategy)
}

func TestRegisterIssuesUsableToken(t *testing.T) {
	users := &stubUserRepo{
		createFn: func(_ context.Context, email, passwordHash string, role model.UserRole) (*model.User, error) {
			if passwordHash == "secret" {
				t.Fatal("password must be stored hashed")
			}
			return &model.User{ID: 7, Email: email, PasswordHash: passwordHash, Role: role}, nil
		},
	}
	uc := newAuthUseCase(users)

	user, token, err := uc.Register(context.Background(), "owner@example.com", "secret", model.RoleOwner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 7 || user.Role != model.RoleOwner {
		t.Fatalf("unexpected user: %+v", user)
	}

	users.getByIDFn = func(_ context.Context, id int64) (*model.User, error) {
		if id != 7 {
			t.Fatalf("unexpected id %d", id)
		}
		return user, nil
	}
	actor, err := uc.ResolveActor(context.Background(), token)
	if err != nil {
		t.Fatalf("token must resolve back to its user: %v", err)
	}
	if actor.ID != 7 {
		t.Fatalf("unexpected actor %+v", actor)
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	uc := newAuthUseCase(&stubUserRepo{})
	_, _, err := uc.Register(context.Background(), "x@example.com", "secret", model.UserRole("Admin"))
	if !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := &stubUserRepo{
		createFn: func(context.Context, string, string, model.UserRole) (*model.User, error) {
			return nil, domainErrors.ErrAlreadyExists
		},
	}
	uc := newAuthUseCase(users)
	_, _, err := uc.Register(context.Background(), "x@example.com", "secret", model.RoleClient)
	if !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("secret")
	if err != nil {
		t.Fatal(err)
	}
	users := &stubUserRepo{
		getByEmailFn: func(_ context.Context, email string) (*model.User, error) {
			if email != "client@example.com" {
				return nil, domainErrors.ErrNotFound
			}
			return &model.User{ID: 1, Email: email, PasswordHash: hash, Role: model.RoleClient}, nil
		},
	}
	uc := newAuthUseCase(users)

	user, token, err := uc.Authenticate(context.Background(), "client@example.com", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 1 || token == "" {
		t.Fatalf("unexpected result: %+v %q", user, token)
	}

	if _, _, err := uc.Authenticate(context.Background(), "client@example.com", "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := uc.Authenticate(context.Background(), "nobody@example.com", "secret"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestResolveActorRejectsGarbage(t *testing.T) {
	uc := newAuthUseCase(&stubUserRepo{})
	if _, err := uc.ResolveActor(context.Background(), "garbage"); err == nil {
		t.Fatal("expected an error for a malformed token")
	}
}
