package scoring

// Policy scores code; lower scores are better unless Better says otherwise
type Policy interface {
	// Score computes the comparable score of code
	Score(code string) int
	// Better reports whether score a beats score b
	Better(a, b int) bool
}

var _ Policy = ByteLength{}

// ByteLength scores code by its length in bytes
type ByteLength struct{}

func (ByteLength) Score(code string) int {
	return len(code)
}

func (ByteLength) Better(a, b int) bool {
	return a < b
}
