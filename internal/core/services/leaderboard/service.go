package leaderboard

import (
	"context"

	"gitlab.com/golf-2025.net/internal/domain"
)

//go:generate mockgen -source=./service.go -package=leaderboardmocks -destination=mocks/service.mock.go ILeaderboardService

// ILeaderboardService serves ranked boards per challenge and language
type ILeaderboardService interface {
	// GetLeaderboard returns the ranked valid solutions of a challenge in a language
	GetLeaderboard(ctx context.Context, challenge int64, language string) ([]domain.LeaderboardEntry, error)

	// Invalidate drops any cached board, called after every write that can change it
	Invalidate(ctx context.Context, challenge int64, language string)
}
