package secondary

import (
	"context"

	"gitlab.com/golf-2025.net/internal/domain"
)

//go:generate mockgen -source=./judge.go -package=secondarymocks -destination=mocks/judge.mock.go Judge VerdictCache
type Judge interface {
	// Evaluate runs code against a challenge judge.
	// A failing verdict is not an error; errs.ErrJudgeUnavailable is.
	Evaluate(ctx context.Context, req domain.JudgeRequest) (*domain.Verdict, error)
}

// VerdictCache remembers verdicts of code that was already judged
type VerdictCache interface {
	Get(ctx context.Context, req domain.JudgeRequest) (*domain.Verdict, error)
	Set(ctx context.Context, req domain.JudgeRequest, verdict *domain.Verdict) error
}
