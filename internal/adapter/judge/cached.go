package judge

import (
	"context"

	"gitlab.com/golf-2025.net/internal/core/ports/primary"
	"gitlab.com/golf-2025.net/internal/core/ports/secondary"
	"gitlab.com/golf-2025.net/internal/domain"
)

var _ secondary.Judge = (*CachedJudge)(nil)

// CachedJudge answers repeated evaluations of the same code from a verdict cache.
// Only passing verdicts are kept; a failure is judged again next time.
// The cache is best effort: its failures only cost a judge run.
type CachedJudge struct {
	next   secondary.Judge
	cache  secondary.VerdictCache
	logger primary.Logger
}

func NewCachedJudge(next secondary.Judge, cache secondary.VerdictCache, logger primary.Logger) *CachedJudge {
	return &CachedJudge{
		next:   next,
		cache:  cache,
		logger: logger,
	}
}

func (j *CachedJudge) Evaluate(ctx context.Context, req domain.JudgeRequest) (*domain.Verdict, error) {
	verdict, err := j.cache.Get(ctx, req)
	if err != nil {
		j.logger.Warn("Failed to read verdict cache", "language", req.Language, "error", err)
	}
	if verdict != nil {
		j.logger.Debug("Verdict cache hit", "language", req.Language)
		return verdict, nil
	}

	verdict, err = j.next.Evaluate(ctx, req)
	if err != nil {
		return nil, err
	}

	if !verdict.Pass {
		return verdict, nil
	}
	if err := j.cache.Set(ctx, req, verdict); err != nil {
		j.logger.Warn("Failed to write verdict cache", "language", req.Language, "error", err)
	}
	return verdict, nil
}
