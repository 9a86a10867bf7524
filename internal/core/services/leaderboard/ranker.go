package leaderboard

import (
	"cmp"
	"slices"

	"github.com/ecodeclub/ekit/slice"

	"gitlab.com/golf-2025.net/internal/domain"
)

// Rank projects solutions onto a leaderboard.
// Invalid solutions are left out; the rest is ordered by score, then by who reached it first.
func Rank(solutions []*domain.Solution) []domain.LeaderboardEntry {
	valid := make([]*domain.Solution, 0, len(solutions))
	for _, s := range solutions {
		if s != nil && s.Valid {
			valid = append(valid, s)
		}
	}

	slices.SortStableFunc(valid, compare)

	return slice.Map(valid, func(idx int, src *domain.Solution) domain.LeaderboardEntry {
		return domain.LeaderboardEntry{
			Rank:           idx + 1,
			Author:         src.Author,
			Score:          src.Score,
			LastImprovedAt: src.LastImprovedAt,
		}
	})
}

func compare(a, b *domain.Solution) int {
	if c := cmp.Compare(a.Score, b.Score); c != 0 {
		return c
	}
	if c := a.LastImprovedAt.Compare(b.LastImprovedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.Author, b.Author)
}
