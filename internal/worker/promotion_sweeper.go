package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// PromotionFacade exposes the subset of application functionality required
// by the sweeper.
type PromotionFacade interface {
	ClearExpiredPromotions(ctx context.Context) (int64, error)
}

// PromotionSweeper periodically drops the promoted flag from restaurants
// whose paid promotion window has ended.
type PromotionSweeper struct {
	facade   PromotionFacade
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewPromotionSweeper constructs the background sweeper.
func NewPromotionSweeper(facade PromotionFacade, interval time.Duration, logger *slog.Logger) *PromotionSweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &PromotionSweeper{
		facade:   facade,
		interval: interval,
		logger:   logger,
	}
}

// Start launches background sweeping.
func (s *PromotionSweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(runCtx)
}

// Stop waits for the sweep loop to finish.
func (s *PromotionSweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *PromotionSweeper) run(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *PromotionSweeper) sweep(ctx context.Context) {
	cleared, err := s.facade.ClearExpiredPromotions(ctx)
	if err != nil {
		s.logger.Error("promotion sweep failed", slog.String("error", err.Error()))
		return
	}
	if cleared > 0 {
		s.logger.Info("expired promotions cleared", slog.Int64("count", cleared))
	}
}
