package solutions

import "gitlab.com/golf-2025.net/internal/domain"

// maxCodeBytes bounds a submission body
const maxCodeBytes = 1 << 20

// SubmitSolutionRequest represents a request to submit a solution
type SubmitSolutionRequest struct {
	Code string `json:"code"`
}

// SolutionsResponse is a challenge page for one language, with the judge output after a submission
type SolutionsResponse struct {
	Challenge   *domain.Challenge         `json:"challenge"`
	Leaderboard []domain.LeaderboardEntry `json:"leaderboard"`
	Outcome     domain.Outcome            `json:"outcome,omitempty"`
	Tests       *domain.Verdict           `json:"tests,omitempty"`
	// Code is the submitted code after a submission, the caller's best otherwise
	Code                    *string `json:"code"`
	PreviousSolutionInvalid bool    `json:"previous_solution_invalid"`
}

// LanguagesResponse lists the languages accepting submissions
type LanguagesResponse struct {
	Languages []*domain.Language `json:"languages"`
}
