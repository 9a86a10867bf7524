package secondary

import (
	"time"

	"gitlab.com/golf-2025.net/internal/domain"
)

// Metrics records what happens to submissions
type Metrics interface {
	ObserveOutcome(language string, outcome domain.Outcome)
	ObserveJudge(language string, elapsed time.Duration, err error)
	ObserveRevalidation(result string)
}

// NopMetrics drops every observation
type NopMetrics struct{}

func (NopMetrics) ObserveOutcome(string, domain.Outcome)     {}
func (NopMetrics) ObserveJudge(string, time.Duration, error) {}
func (NopMetrics) ObserveRevalidation(string)                {}
