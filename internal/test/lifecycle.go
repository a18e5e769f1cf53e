package test

import (
	"go.uber.org/fx"
)

// LifecycleRecorder collects fx hooks so tests can run OnStart and OnStop by
// hand instead of spinning up a full application.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append records h without invoking it.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub stands in for fx.Shutdowner and signals on Called when a
// component requests termination, for example after a listener failure.
type ShutdownerStub struct {
	Called chan struct{}
}

// Shutdown delivers at most one signal per pending receiver and never blocks.
func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called == nil {
		return nil
	}
	select {
	case s.Called <- struct{}{}:
	default:
	}
	return nil
}
