package domain

import "time"

// LeaderboardEntry is one ranked line of a challenge leaderboard
type LeaderboardEntry struct {
	Rank           int       `json:"rank"`
	Author         int64     `json:"author"`
	Score          int       `json:"score"`
	LastImprovedAt time.Time `json:"lastImprovedAt"`
}
