package secondary

import (
	"context"

	"gitlab.com/golf-2025.net/internal/domain"
)

//go:generate mockgen -source=./leaderboard.go -package=secondarymocks -destination=mocks/leaderboard.mock.go LeaderboardCache
type LeaderboardCache interface {
	// Get returns the cached board, nil on a miss
	Get(ctx context.Context, challenge int64, language string) ([]domain.LeaderboardEntry, error)

	// Generation returns the invalidation counter of the board
	Generation(ctx context.Context, challenge int64, language string) (int64, error)

	// Set stores a board computed while the counter was at generation.
	// It is a no-op when the board was invalidated in the meantime.
	Set(ctx context.Context, challenge int64, language string, generation int64, entries []domain.LeaderboardEntry) error

	// Invalidate drops the cached board and bumps its generation
	Invalidate(ctx context.Context, challenge int64, language string) error
}
