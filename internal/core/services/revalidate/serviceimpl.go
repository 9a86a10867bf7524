package revalidate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"gitlab.com/golf-2025.net/internal/core/ports/primary"
	"gitlab.com/golf-2025.net/internal/core/ports/secondary"
	"gitlab.com/golf-2025.net/internal/core/services/leaderboard"
	"gitlab.com/golf-2025.net/internal/domain"
	"gitlab.com/golf-2025.net/internal/static/errs"
)

// Results reported to metrics
const (
	ResultConfirmed   = "confirmed"
	ResultInvalidated = "invalidated"
	ResultSkipped     = "skipped"
)

var _ IRevalidateService = (*RevalidateService)(nil)

type RevalidateService struct {
	solutionRepo  secondary.SolutionRepository
	challengeRepo secondary.ChallengeRepository
	languageRepo  secondary.LanguageRepository
	judge         secondary.Judge
	leaderboard   leaderboard.ILeaderboardService
	metrics       secondary.Metrics
	logger        primary.Logger

	maxAge      time.Duration
	retryAfter  time.Duration
	parallelism int
	now         func() time.Time
}

func NewRevalidateService(
	solutionRepo secondary.SolutionRepository,
	challengeRepo secondary.ChallengeRepository,
	languageRepo secondary.LanguageRepository,
	judge secondary.Judge,
	leaderboardSvc leaderboard.ILeaderboardService,
	metrics secondary.Metrics,
	logger primary.Logger,
	maxAge time.Duration,
	retryAfter time.Duration,
	parallelism int,
) *RevalidateService {
	if metrics == nil {
		metrics = secondary.NopMetrics{}
	}
	if parallelism < 1 {
		parallelism = 1
	}
	return &RevalidateService{
		solutionRepo:  solutionRepo,
		challengeRepo: challengeRepo,
		languageRepo:  languageRepo,
		judge:         judge,
		leaderboard:   leaderboardSvc,
		metrics:       metrics,
		logger:        logger,
		maxAge:        maxAge,
		retryAfter:    retryAfter,
		parallelism:   parallelism,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// RevalidateStale never touches score, code or last improvement of a solution.
// A solution that fails again keeps its slot but is marked invalid.
func (s *RevalidateService) RevalidateStale(ctx context.Context, limit int) (Report, error) {
	now := s.now()
	stale, err := s.solutionRepo.ListStale(ctx, now.Add(-s.maxAge), now, limit)
	if err != nil {
		return Report{}, fmt.Errorf("failed to list stale solutions: %w: %w", errs.ErrStoreUnavailable, err)
	}
	if len(stale) == 0 {
		return Report{}, nil
	}

	challenges, languages := s.loadCatalog(ctx, stale)

	var (
		mu     sync.Mutex
		report = Report{Checked: len(stale)}
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)
	for _, solution := range stale {
		solution := solution
		g.Go(func() error {
			result := s.revalidate(gctx, solution, challenges[solution.Challenge], languages[solution.Language])
			s.metrics.ObserveRevalidation(result)

			mu.Lock()
			defer mu.Unlock()
			switch result {
			case ResultConfirmed:
				report.Confirmed++
			case ResultInvalidated:
				report.Invalidated++
			default:
				report.Skipped++
			}
			return nil
		})
	}
	_ = g.Wait()

	s.logger.Info("Revalidation pass finished",
		"checked", report.Checked,
		"confirmed", report.Confirmed,
		"invalidated", report.Invalidated,
		"skipped", report.Skipped)
	return report, ctx.Err()
}

// loadCatalog resolves every challenge and language of the batch once.
// Entries that cannot be resolved stay nil and their solutions are skipped.
func (s *RevalidateService) loadCatalog(ctx context.Context, stale []*domain.Solution) (map[int64]*domain.Challenge, map[string]*domain.Language) {
	challenges := make(map[int64]*domain.Challenge)
	languages := make(map[string]*domain.Language)
	for _, solution := range stale {
		if _, ok := challenges[solution.Challenge]; !ok {
			c, err := s.challengeRepo.GetByID(ctx, solution.Challenge)
			if err != nil {
				s.logger.Warn("Failed to get challenge for revalidation", "challenge", solution.Challenge, "error", err)
			}
			challenges[solution.Challenge] = c
		}
		if _, ok := languages[solution.Language]; !ok {
			l, err := s.languageRepo.Get(ctx, solution.Language)
			if err != nil {
				s.logger.Warn("Failed to get language for revalidation", "language", solution.Language, "error", err)
			}
			languages[solution.Language] = l
		}
	}
	return challenges, languages
}

func (s *RevalidateService) revalidate(ctx context.Context, solution *domain.Solution, challenge *domain.Challenge, language *domain.Language) string {
	if challenge == nil || language == nil {
		s.postpone(ctx, solution)
		return ResultSkipped
	}

	verdict, err := s.judge.Evaluate(ctx, domain.JudgeRequest{
		Code:     solution.Code,
		Language: language.Name,
		Version:  language.LatestVersion,
		Judge:    challenge.Judge,
	})
	if err != nil || verdict == nil {
		s.logger.Warn("Judge unavailable, revalidation skipped", "id", solution.ID, "error", err)
		s.postpone(ctx, solution)
		return ResultSkipped
	}

	next := *solution
	result := ResultInvalidated
	if verdict.Pass {
		next.Valid = true
		next.ValidatedAt = s.now()
		next.LanguageVersion = language.LatestVersion
		result = ResultConfirmed
	} else {
		next.Valid = false
	}

	err = s.solutionRepo.UpdateByKey(ctx, solution.Key(), solution.Revision, &next)
	if errors.Is(err, errs.ErrSolutionNotFound) {
		// The author submitted meanwhile; that verdict is newer
		s.logger.Info("Solution changed during revalidation", "id", solution.ID)
		return ResultSkipped
	}
	if err != nil {
		s.logger.Error("Failed to store revalidated solution", "id", solution.ID, "error", err)
		return ResultSkipped
	}

	if next.Valid != solution.Valid {
		s.leaderboard.Invalidate(context.WithoutCancel(ctx), solution.Challenge, solution.Language)
		s.logger.Info("Solution no longer passes", "id", solution.ID, "author", solution.Author,
			"challenge", solution.Challenge, "language", solution.Language)
	}
	return result
}

// postpone moves a solution that could not be judged behind the rest of the queue,
// so a judge rejecting one language never starves the others
func (s *RevalidateService) postpone(ctx context.Context, solution *domain.Solution) {
	if ctx.Err() != nil {
		return
	}
	err := s.solutionRepo.Postpone(ctx, solution.Key(), solution.Revision, s.now().Add(s.retryAfter))
	if err != nil && !errors.Is(err, errs.ErrSolutionNotFound) {
		s.logger.Warn("Failed to postpone revalidation", "id", solution.ID, "error", err)
	}
}
