package di

import (
	"go.uber.org/fx"

	"github.com/mberkut/dishpatch/internal/adapter/webhook"
	"github.com/mberkut/dishpatch/internal/app"
	"github.com/mberkut/dishpatch/internal/config"
	"github.com/mberkut/dishpatch/internal/logger"
	"github.com/mberkut/dishpatch/internal/pkg/auth"
	"github.com/mberkut/dishpatch/internal/pubsub"
	"github.com/mberkut/dishpatch/internal/server/http/handlers"
	"github.com/mberkut/dishpatch/internal/server/http/router"
	"github.com/mberkut/dishpatch/internal/storage/postgres"
	"github.com/mberkut/dishpatch/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		pubsub.Module,
		webhook.Module,
		usecase.Module,
		fx.Provide(func(facade *app.DeliveryFacade) handlers.DeliveryFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
