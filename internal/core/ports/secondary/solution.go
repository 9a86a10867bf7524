package secondary

import (
	"context"
	"time"

	"gitlab.com/golf-2025.net/internal/domain"
)

//go:generate mockgen -source=./solution.go -package=secondarymocks -destination=mocks/solution.mock.go SolutionRepository
type SolutionRepository interface {
	// Get returns the solution stored for the triple, nil when there is none
	Get(ctx context.Context, key domain.TripleKey) (*domain.Solution, error)

	// Insert stores a new solution, errs.ErrSolutionConflict when the triple is taken
	Insert(ctx context.Context, solution *domain.Solution) error

	// UpdateByKey replaces the row of the triple if it is still at revision,
	// errs.ErrSolutionNotFound otherwise
	UpdateByKey(ctx context.Context, key domain.TripleKey, revision int64, next *domain.Solution) error

	// ListValid returns every valid solution of a challenge in a language
	ListValid(ctx context.Context, challenge int64, language string) ([]*domain.Solution, error)

	// ListStale returns valid solutions validated before cutoff or judged with an outdated language version,
	// leaving out those postponed past now
	ListStale(ctx context.Context, cutoff, now time.Time, limit int) ([]*domain.Solution, error)

	// Postpone keeps a solution out of ListStale until the given time if it is still at revision,
	// errs.ErrSolutionNotFound otherwise
	Postpone(ctx context.Context, key domain.TripleKey, revision int64, until time.Time) error
}
