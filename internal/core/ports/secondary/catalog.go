package secondary

import (
	"context"

	"gitlab.com/golf-2025.net/internal/domain"
)

//go:generate mockgen -source=./catalog.go -package=secondarymocks -destination=mocks/catalog.mock.go ChallengeRepository LanguageRepository
type ChallengeRepository interface {
	// GetByID returns the challenge, nil when it does not exist
	GetByID(ctx context.Context, id int64) (*domain.Challenge, error)
}

type LanguageRepository interface {
	// Get retrieves a language by name, nil when it does not exist
	Get(ctx context.Context, name string) (*domain.Language, error)

	// ListActive retrieves every language accepting submissions
	ListActive(ctx context.Context) ([]*domain.Language, error)
}
