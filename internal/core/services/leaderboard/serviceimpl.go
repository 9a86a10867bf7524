package leaderboard

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"gitlab.com/golf-2025.net/internal/core/ports/primary"
	"gitlab.com/golf-2025.net/internal/core/ports/secondary"
	"gitlab.com/golf-2025.net/internal/domain"
	"gitlab.com/golf-2025.net/internal/static/errs"
)

var _ ILeaderboardService = (*LeaderboardService)(nil)

// LeaderboardService recomputes boards from the solution store.
// The cache only ever holds a board computed from the store and is dropped on every write.
type LeaderboardService struct {
	solutionRepo secondary.SolutionRepository
	cache        secondary.LeaderboardCache
	logger       primary.Logger
	group        singleflight.Group

	// epochs counts invalidations per board; a flight started before a write is never joined after it
	mu     sync.Mutex
	epochs map[string]uint64
}

// NewLeaderboardService creates a leaderboard service, cache may be nil
func NewLeaderboardService(
	solutionRepo secondary.SolutionRepository,
	cache secondary.LeaderboardCache,
	logger primary.Logger,
) *LeaderboardService {
	return &LeaderboardService{
		solutionRepo: solutionRepo,
		cache:        cache,
		logger:       logger,
		epochs:       make(map[string]uint64),
	}
}

// GetLeaderboard returns the ranked valid solutions of a challenge in a language
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, challenge int64, language string) ([]domain.LeaderboardEntry, error) {
	if s.cache != nil {
		entries, err := s.cache.Get(ctx, challenge, language)
		if err != nil {
			// Fall through to the store
			s.logger.Warn("Failed to read cached leaderboard", "challenge", challenge, "language", language, "error", err)
		} else if entries != nil {
			return entries, nil
		}
	}

	// Collapse concurrent misses for the same board. The flight outlives any single caller.
	key := fmt.Sprintf("%s:%d", groupKey(challenge, language), s.epoch(challenge, language))
	flightCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key, func() (interface{}, error) {
		return s.compute(flightCtx, challenge, language)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]domain.LeaderboardEntry), nil
	}
}

func (s *LeaderboardService) epoch(challenge int64, language string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epochs[groupKey(challenge, language)]
}

func (s *LeaderboardService) bump(challenge int64, language string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epochs[groupKey(challenge, language)]++
}

func (s *LeaderboardService) compute(ctx context.Context, challenge int64, language string) ([]domain.LeaderboardEntry, error) {
	// Read the generation before the store so a write landing in between discards our result
	generation := int64(-1)
	if s.cache != nil {
		g, err := s.cache.Generation(ctx, challenge, language)
		if err != nil {
			s.logger.Warn("Failed to read leaderboard generation", "challenge", challenge, "language", language, "error", err)
		} else {
			generation = g
		}
	}

	solutions, err := s.solutionRepo.ListValid(ctx, challenge, language)
	if err != nil {
		s.logger.Error("Failed to list valid solutions", "challenge", challenge, "language", language, "error", err)
		return nil, fmt.Errorf("failed to list valid solutions: %w: %w", errs.ErrStoreUnavailable, err)
	}

	entries := Rank(solutions)

	if s.cache != nil && generation >= 0 {
		if err := s.cache.Set(ctx, challenge, language, generation, entries); err != nil {
			s.logger.Warn("Failed to cache leaderboard", "challenge", challenge, "language", language, "error", err)
		}
	}
	return entries, nil
}

// Invalidate drops the cached board of a challenge in a language
func (s *LeaderboardService) Invalidate(ctx context.Context, challenge int64, language string) {
	s.bump(challenge, language)
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, challenge, language); err != nil {
		s.logger.Error("Failed to invalidate leaderboard", "challenge", challenge, "language", language, "error", err)
	}
}

func groupKey(challenge int64, language string) string {
	return fmt.Sprintf("%d:%s", challenge, language)
}
