package decision

import (
	"time"

	"github.com/google/uuid"

	"gitlab.com/golf-2025.net/internal/core/services/scoring"
	"gitlab.com/golf-2025.net/internal/domain"
)

// Candidate is a judged submission waiting for a decision
type Candidate struct {
	Key             domain.TripleKey
	Code            string
	LanguageVersion string
}

// Engine decides what a submission does to the stored best solution of its triple.
// It is pure apart from id generation and never fails.
type Engine struct {
	policy scoring.Policy
	newID  func() uuid.UUID
}

// NewEngine creates an engine scoring with policy
func NewEngine(policy scoring.Policy) *Engine {
	return &Engine{
		policy: policy,
		newID:  uuid.New,
	}
}

// Policy returns the score policy the engine decides with
func (e *Engine) Policy() scoring.Policy {
	return e.policy
}

// Decide computes the outcome of candidate given what is stored for its triple
func (e *Engine) Decide(prior domain.Prior, verdict domain.Verdict, candidate Candidate, at time.Time) domain.Decision {
	// A failing submission never touches stored state
	if !verdict.Pass {
		return domain.Decision{Outcome: domain.OutcomeRejected}
	}

	score := e.policy.Score(candidate.Code)

	switch p := prior.(type) {
	case domain.NoPrior:
		return domain.Decision{
			Outcome: domain.OutcomeCreated,
			Solution: &domain.Solution{
				ID:              e.newID(),
				Author:          candidate.Key.Author,
				Challenge:       candidate.Key.Challenge,
				Language:        candidate.Key.Language,
				LanguageVersion: candidate.LanguageVersion,
				Code:            candidate.Code,
				Score:           score,
				Valid:           true,
				ValidatedAt:     at,
				LastImprovedAt:  at,
			},
		}
	case domain.InvalidPrior:
		// Broken code is always replaced, whatever its old score
		return domain.Decision{
			Outcome:  domain.OutcomeUpdated,
			Solution: e.replace(p.Solution, candidate, score, at),
		}
	case domain.ValidPrior:
		if e.policy.Better(score, p.Solution.Score) || replaceOnTie(score, p.Solution.Score) {
			return domain.Decision{
				Outcome:  domain.OutcomeUpdated,
				Solution: e.replace(p.Solution, candidate, score, at),
			}
		}
		kept := p.Solution
		return domain.Decision{Outcome: domain.OutcomeUnchanged, Solution: &kept}
	default:
		panic("decision: unknown prior")
	}
}

// replaceOnTie keeps the most recent passing code when scores are equal.
// lastImprovedAt still does not move, so the leaderboard position is kept.
func replaceOnTie(candidate, stored int) bool {
	return candidate == stored
}

func (e *Engine) replace(prev domain.Solution, candidate Candidate, score int, at time.Time) *domain.Solution {
	next := prev
	next.Code = candidate.Code
	next.Score = score
	next.LanguageVersion = candidate.LanguageVersion
	next.Valid = true
	next.ValidatedAt = at
	if e.policy.Better(score, prev.Score) {
		next.LastImprovedAt = at
	}
	return &next
}
