package schedulerengine

import (
	"context"
	"sync"
	"time"

	"gitlab.com/golf-2025.net/internal/config"
	"gitlab.com/golf-2025.net/internal/core/ports/primary"
	"gitlab.com/golf-2025.net/internal/core/services/revalidate"
)

type SchedulerEngine struct {
	RevalidateCfg *config.RevalidateCfg
	revalidator   revalidate.IRevalidateService
	logger        primary.Logger
	wg            sync.WaitGroup
}

func NewSchedulerEngine(
	revalidateCfg *config.RevalidateCfg,
	revalidator revalidate.IRevalidateService,
	logger primary.Logger,
) *SchedulerEngine {
	return &SchedulerEngine{
		RevalidateCfg: revalidateCfg,
		revalidator:   revalidator,
		logger:        logger,
	}
}

// StartRevalidationEngine runs a revalidation pass every interval until ctx is done
func (s *SchedulerEngine) StartRevalidationEngine(ctx context.Context) {
	s.wg.Add(1)
	ticker := time.NewTicker(s.RevalidateCfg.Interval)
	go func() {
		defer s.wg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.revalidateStale(ctx)
			}
		}
	}()
}

// Wait blocks until the running pass has returned
func (s *SchedulerEngine) Wait() {
	s.wg.Wait()
}

func (s *SchedulerEngine) revalidateStale(ctx context.Context) {
	s.logger.Debug("Revalidating stale solutions", "batch", s.RevalidateCfg.BatchSize)
	if _, err := s.revalidator.RevalidateStale(ctx, s.RevalidateCfg.BatchSize); err != nil {
		s.logger.Error("Failed to revalidate stale solutions", "error", err)
	}
}
