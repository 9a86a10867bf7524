package domain

// Outcome is the result of deciding on a submission
type Outcome string

const (
	OutcomeCreated   Outcome = "created"
	OutcomeUpdated   Outcome = "updated"
	OutcomeUnchanged Outcome = "unchanged"
	OutcomeRejected  Outcome = "rejected"
)

// Writes reports whether the outcome has to be persisted
func (o Outcome) Writes() bool {
	return o == OutcomeCreated || o == OutcomeUpdated
}

// Decision is the next stored state computed for a submission.
// Solution is nil for Rejected, the untouched prior for Unchanged.
type Decision struct {
	Outcome  Outcome
	Solution *Solution
}
