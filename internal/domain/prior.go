package domain

// Prior is what is stored for a triple before a submission is decided.
// It is one of NoPrior, InvalidPrior or ValidPrior.
type Prior interface {
	prior()
}

// NoPrior means the account never had a passing solution for the triple
type NoPrior struct{}

// InvalidPrior holds a stored solution whose code no longer passes the judge
type InvalidPrior struct {
	Solution Solution
}

// ValidPrior holds a stored solution whose code passed the judge at ValidatedAt
type ValidPrior struct {
	Solution Solution
}

func (NoPrior) prior()      {}
func (InvalidPrior) prior() {}
func (ValidPrior) prior()   {}

// PriorOf classifies a stored solution, nil meaning no history
func PriorOf(s *Solution) Prior {
	switch {
	case s == nil:
		return NoPrior{}
	case !s.Valid:
		return InvalidPrior{Solution: *s}
	default:
		return ValidPrior{Solution: *s}
	}
}
