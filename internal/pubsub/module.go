package pubsub

import (
	"context"

	"go.uber.org/fx"

	"github.com/mberkut/dishpatch/internal/config"
)

// Module wires the event broker with lifecycle tied to the application.
var Module = fx.Options(
	fx.Provide(newBroker),
	fx.Invoke(registerLifecycle),
)

func newBroker(cfg *config.Config) *Broker {
	return NewBroker(cfg.EventBufferSize)
}

func registerLifecycle(lc fx.Lifecycle, broker *Broker) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			broker.Close()
			return nil
		},
	})
}
