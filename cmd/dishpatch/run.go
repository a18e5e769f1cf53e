package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/fx"
)

// run drives the fx application until the signal context is cancelled or a
// component shuts the app down from inside.
func run(ctx context.Context, app *fx.App) {
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "dishpatch start: %v\n", err)
		os.Exit(1)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	// stop with a fresh context: the signal one is already cancelled
	if err := app.Stop(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "dishpatch stop: %v\n", err)
		os.Exit(1)
	}
}
