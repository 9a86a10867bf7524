package submission

import (
	"context"

	"gitlab.com/golf-2025.net/internal/domain"
)

// SubmitRequest is one submission of code by an account
type SubmitRequest struct {
	Account   int64
	Challenge int64
	Language  string
	Code      string
}

// SubmitResult is what the caller learns about its submission
type SubmitResult struct {
	Outcome   domain.Outcome
	Verdict   *domain.Verdict
	Challenge *domain.Challenge
	// Best is the stored solution after the decision, nil when there is none
	Best        *domain.Solution
	Leaderboard []domain.LeaderboardEntry
	// PreviousSolutionInvalid is set when the stored solution was broken before this submission
	PreviousSolutionInvalid bool
}

// ChallengeView is a challenge page for one language
type ChallengeView struct {
	Challenge   *domain.Challenge
	Leaderboard []domain.LeaderboardEntry
	// Best is only filled for an authenticated caller with history
	Best                    *domain.BestSolution
	PreviousSolutionInvalid bool
}

//go:generate mockgen -source=./service.go -package=submissionmocks -destination=mocks/service.mock.go ISubmissionService

// ISubmissionService judges, scores and stores solutions
type ISubmissionService interface {
	// Submit judges code and updates the account's best solution when it should
	Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error)

	// GetBest returns the stored solution of an account, nil when it has none
	GetBest(ctx context.Context, account, challenge int64, language string) (*domain.BestSolution, error)

	// ViewChallenge returns the leaderboard of a challenge and, when account is set, its best solution
	ViewChallenge(ctx context.Context, account *int64, challenge int64, language string) (*ChallengeView, error)

	// GetLanguages lists the languages accepting submissions
	GetLanguages(ctx context.Context) ([]*domain.Language, error)
}
