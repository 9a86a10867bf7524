package primary

import (
	"context"

	"gitlab.com/golf-2025.net/internal/domain"
)

// JWTService verifies bearer tokens presented by callers
type JWTService interface {
	// DecodeTokenPayload verifies the token signature and returns its payload
	DecodeTokenPayload(ctx context.Context, token string) (domain.AuthPayload, error)
	// GenerateTokenHMAC signs a payload, used by tooling and tests
	GenerateTokenHMAC(ctx context.Context, payload domain.AuthPayload) (string, error)
}
