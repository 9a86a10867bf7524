package submission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitlab.com/golf-2025.net/internal/core/ports/primary"
	"gitlab.com/golf-2025.net/internal/core/ports/secondary"
	"gitlab.com/golf-2025.net/internal/core/services/decision"
	"gitlab.com/golf-2025.net/internal/core/services/leaderboard"
	"gitlab.com/golf-2025.net/internal/domain"
	"gitlab.com/golf-2025.net/internal/static/errs"
)

// DefaultWriteAttempts bounds the read-decide-write loop of one submission
const DefaultWriteAttempts = 3

var _ ISubmissionService = (*SubmissionService)(nil)

// SubmissionService implements the ISubmissionService interface
type SubmissionService struct {
	solutionRepo  secondary.SolutionRepository
	challengeRepo secondary.ChallengeRepository
	languageRepo  secondary.LanguageRepository
	judge         secondary.Judge
	engine        *decision.Engine
	leaderboard   leaderboard.ILeaderboardService
	metrics       secondary.Metrics
	logger        primary.Logger

	writeAttempts int
	now           func() time.Time
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(
	solutionRepo secondary.SolutionRepository,
	challengeRepo secondary.ChallengeRepository,
	languageRepo secondary.LanguageRepository,
	judge secondary.Judge,
	engine *decision.Engine,
	leaderboardSvc leaderboard.ILeaderboardService,
	metrics secondary.Metrics,
	logger primary.Logger,
) *SubmissionService {
	if metrics == nil {
		metrics = secondary.NopMetrics{}
	}
	return &SubmissionService{
		solutionRepo:  solutionRepo,
		challengeRepo: challengeRepo,
		languageRepo:  languageRepo,
		judge:         judge,
		engine:        engine,
		leaderboard:   leaderboardSvc,
		metrics:       metrics,
		logger:        logger,
		writeAttempts: DefaultWriteAttempts,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Submit judges code and updates the account's best solution when it should.
// The judge runs before the store is touched and no lock is held while it runs.
func (s *SubmissionService) Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	s.logger.Info("Submitting solution",
		"account", req.Account,
		"challenge", req.Challenge,
		"language", req.Language,
		"bytes", len(req.Code))

	challenge, err := s.getChallenge(ctx, req.Challenge)
	if err != nil {
		return nil, err
	}
	language, err := s.getLanguage(ctx, req.Language, true)
	if err != nil {
		return nil, err
	}

	verdict, err := s.evaluate(ctx, challenge, language, req.Code)
	if err != nil {
		return nil, err
	}

	// Nothing may be written for a request that is already gone
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("submission cancelled after judging: %w", err)
	}

	key := domain.TripleKey{Author: req.Account, Challenge: challenge.ID, Language: language.Name}
	candidate := decision.Candidate{
		Key:             key,
		Code:            req.Code,
		LanguageVersion: language.LatestVersion,
	}

	result, err := s.decideAndStore(ctx, key, *verdict, candidate)
	if err != nil {
		return nil, err
	}
	result.Verdict = verdict
	result.Challenge = challenge

	s.metrics.ObserveOutcome(language.Name, result.Outcome)
	s.logger.Info("Solution decided",
		"account", req.Account,
		"challenge", challenge.ID,
		"language", language.Name,
		"outcome", result.Outcome)

	board, err := s.leaderboard.GetLeaderboard(ctx, challenge.ID, language.Name)
	if err != nil {
		// The outcome is already stored, the board is only a convenience
		s.logger.Warn("Failed to load leaderboard after submission", "challenge", challenge.ID, "language", language.Name, "error", err)
	}
	result.Leaderboard = board

	return result, nil
}

// decideAndStore runs the read-decide-write loop for one triple.
// A conflicting insert or an update that lost against a concurrent writer is re-decided from fresh state.
func (s *SubmissionService) decideAndStore(ctx context.Context, key domain.TripleKey, verdict domain.Verdict, candidate decision.Candidate) (*SubmitResult, error) {
	if !verdict.Pass {
		return s.reject(ctx, key, verdict, candidate), nil
	}

	var previousInvalid bool
	for attempt := 1; attempt <= s.writeAttempts; attempt++ {
		current, err := s.solutionRepo.Get(ctx, key)
		if err != nil {
			s.logger.Error("Failed to get solution", "key", key, "error", err)
			return nil, fmt.Errorf("failed to get solution: %w: %w", errs.ErrStoreUnavailable, err)
		}
		if attempt == 1 {
			previousInvalid = current != nil && !current.Valid
		}

		d := s.engine.Decide(domain.PriorOf(current), verdict, candidate, s.now())
		result := &SubmitResult{
			Outcome:                 d.Outcome,
			Best:                    d.Solution,
			PreviousSolutionInvalid: previousInvalid,
		}

		switch d.Outcome {
		case domain.OutcomeCreated:
			err = s.solutionRepo.Insert(ctx, d.Solution)
		case domain.OutcomeUpdated:
			err = s.solutionRepo.UpdateByKey(ctx, key, current.Revision, d.Solution)
		default:
			return result, nil
		}

		if err == nil {
			// The write stands even if the caller is gone, so must the invalidation
			s.leaderboard.Invalidate(context.WithoutCancel(ctx), key.Challenge, key.Language)
			return result, nil
		}

		if errors.Is(err, errs.ErrSolutionConflict) || errors.Is(err, errs.ErrSolutionNotFound) {
			s.logger.Warn("Concurrent write on solution, deciding again",
				"key", key,
				"attempt", attempt,
				"outcome", d.Outcome,
				"error", err)
			continue
		}

		s.logger.Error("Failed to store solution", "key", key, "outcome", d.Outcome, "error", err)
		return nil, fmt.Errorf("failed to store solution: %w: %w", errs.ErrStoreUnavailable, err)
	}

	s.logger.Error("Gave up storing solution", "key", key, "attempts", s.writeAttempts)
	return nil, errs.ErrStoreConflict
}

// reject never writes; the stored solution is only read to tell the caller whether it is broken
func (s *SubmissionService) reject(ctx context.Context, key domain.TripleKey, verdict domain.Verdict, candidate decision.Candidate) *SubmitResult {
	current, err := s.solutionRepo.Get(ctx, key)
	if err != nil {
		s.logger.Warn("Failed to get solution for rejected submission", "key", key, "error", err)
		current = nil
	}
	d := s.engine.Decide(domain.PriorOf(current), verdict, candidate, s.now())
	return &SubmitResult{
		Outcome:                 d.Outcome,
		Best:                    current,
		PreviousSolutionInvalid: current != nil && !current.Valid,
	}
}

func (s *SubmissionService) evaluate(ctx context.Context, challenge *domain.Challenge, language *domain.Language, code string) (*domain.Verdict, error) {
	start := time.Now()
	verdict, err := s.judge.Evaluate(ctx, domain.JudgeRequest{
		Code:     code,
		Language: language.Name,
		Version:  language.LatestVersion,
		Judge:    challenge.Judge,
	})
	s.metrics.ObserveJudge(language.Name, time.Since(start), err)
	if err != nil {
		s.logger.Error("Failed to judge solution", "challenge", challenge.ID, "language", language.Name, "error", err)
		if errors.Is(err, errs.ErrJudgeUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", errs.ErrJudgeUnavailable, err)
	}
	if verdict == nil {
		return nil, fmt.Errorf("%w: empty verdict", errs.ErrJudgeUnavailable)
	}
	return verdict, nil
}

// GetBest returns the stored solution of an account, nil when it has none
func (s *SubmissionService) GetBest(ctx context.Context, account, challenge int64, language string) (*domain.BestSolution, error) {
	s.logger.Debug("Getting best solution", "account", account, "challenge", challenge, "language", language)

	solution, err := s.solutionRepo.Get(ctx, domain.TripleKey{Author: account, Challenge: challenge, Language: language})
	if err != nil {
		s.logger.Error("Failed to get solution", "account", account, "challenge", challenge, "language", language, "error", err)
		return nil, fmt.Errorf("failed to get solution: %w: %w", errs.ErrStoreUnavailable, err)
	}
	if solution == nil {
		return nil, nil
	}

	return &domain.BestSolution{
		Code:  solution.Code,
		Valid: solution.Valid,
	}, nil
}

// ViewChallenge returns the leaderboard of a challenge and, when account is set, its best solution
func (s *SubmissionService) ViewChallenge(ctx context.Context, account *int64, challenge int64, language string) (*ChallengeView, error) {
	c, err := s.getChallenge(ctx, challenge)
	if err != nil {
		return nil, err
	}
	// Boards of retired languages stay readable
	lang, err := s.getLanguage(ctx, language, false)
	if err != nil {
		return nil, err
	}

	board, err := s.leaderboard.GetLeaderboard(ctx, c.ID, lang.Name)
	if err != nil {
		return nil, err
	}

	view := &ChallengeView{
		Challenge:   c,
		Leaderboard: board,
	}
	if account == nil {
		return view, nil
	}

	best, err := s.GetBest(ctx, *account, c.ID, lang.Name)
	if err != nil {
		return nil, err
	}
	view.Best = best
	view.PreviousSolutionInvalid = best != nil && !best.Valid

	return view, nil
}

// GetLanguages lists the languages accepting submissions
func (s *SubmissionService) GetLanguages(ctx context.Context) ([]*domain.Language, error) {
	languages, err := s.languageRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("Failed to list languages", "error", err)
		return nil, fmt.Errorf("failed to list languages: %w: %w", errs.ErrStoreUnavailable, err)
	}
	return languages, nil
}

func (s *SubmissionService) getChallenge(ctx context.Context, id int64) (*domain.Challenge, error) {
	challenge, err := s.challengeRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get challenge", "challenge", id, "error", err)
		return nil, fmt.Errorf("failed to get challenge: %w: %w", errs.ErrStoreUnavailable, err)
	}
	if challenge == nil {
		return nil, fmt.Errorf("%w: %d", errs.ErrChallengeNotFound, id)
	}
	return challenge, nil
}

func (s *SubmissionService) getLanguage(ctx context.Context, name string, requireActive bool) (*domain.Language, error) {
	language, err := s.languageRepo.Get(ctx, name)
	if err != nil {
		s.logger.Error("Failed to get language", "language", name, "error", err)
		return nil, fmt.Errorf("failed to get language: %w: %w", errs.ErrStoreUnavailable, err)
	}
	if language == nil || (requireActive && !language.Active) {
		return nil, fmt.Errorf("%w: %s", errs.ErrLanguageNotFound, name)
	}
	return language, nil
}
