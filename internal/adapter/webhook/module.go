package webhook

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/mberkut/dishpatch/internal/config"
	"github.com/mberkut/dishpatch/internal/usecase"
)

// Module exposes the outbound notifier to the fx graph. With no webhook URL
// configured notifications are discarded.
var Module = fx.Provide(newNotifier)

type notifierParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newNotifier(p notifierParams) (usecase.Notifier, error) {
	if p.Config.NotifyURL == "" {
		return usecase.NopNotifier{}, nil
	}
	return NewNotifier(p.Config.NotifyURL, p.Logger)
}
