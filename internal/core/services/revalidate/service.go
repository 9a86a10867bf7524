package revalidate

import "context"

// Report counts what one revalidation pass did
type Report struct {
	Checked     int `json:"checked"`
	Confirmed   int `json:"confirmed"`
	Invalidated int `json:"invalidated"`
	Skipped     int `json:"skipped"`
}

// IRevalidateService re-judges stored solutions whose verdict may no longer hold
type IRevalidateService interface {
	// RevalidateStale re-judges up to limit solutions that were validated too long ago
	// or against an older language version
	RevalidateStale(ctx context.Context, limit int) (Report, error)
}
