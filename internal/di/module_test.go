package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/mberkut/dishpatch/internal/app"
	"github.com/mberkut/dishpatch/internal/config"
	"github.com/mberkut/dishpatch/internal/domain/model"
	"github.com/mberkut/dishpatch/internal/domain/repository"
	"github.com/mberkut/dishpatch/internal/storage/postgres"
	"github.com/mberkut/dishpatch/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		TokenSecret:     "secret",
		TokenTTL:        time.Hour,
		ShutdownTimeout: time.Millisecond,
		EventBufferSize: 1,
		PromotionSweep:  time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	restaurantRepo := &test.RestaurantRepositoryStub{Restaurant: &model.Restaurant{ID: 1, OwnerID: 1}}
	dishRepo := &test.DishRepositoryStub{}
	orderRepo := &test.OrderRepositoryStub{}
	paymentRepo := &test.PaymentRepositoryStub{}

	var facade *app.DeliveryFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.RestaurantRepository(restaurantRepo)),
			fx.Replace(repository.DishRepository(dishRepo)),
			fx.Replace(repository.OrderRepository(orderRepo)),
			fx.Replace(repository.PaymentRepository(paymentRepo)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected delivery facade instance")
	}
}
