package verdictcache

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/blake2b"

	"gitlab.com/golf-2025.net/internal/core/ports/primary"
	"gitlab.com/golf-2025.net/internal/core/ports/secondary"
	"gitlab.com/golf-2025.net/internal/domain"
)

const verdictKeyPrefix = "verdict:"

var _ secondary.VerdictCache = (*VerdictCache)(nil)

// VerdictCache implements the VerdictCache interface with Redis
type VerdictCache struct {
	redisClient *redis.Client
	logger      primary.Logger
	ttl         time.Duration
}

// NewVerdictCache creates a new Redis verdict cache
func NewVerdictCache(redisClient *redis.Client, logger primary.Logger, ttl time.Duration) *VerdictCache {
	return &VerdictCache{
		redisClient: redisClient,
		logger:      logger,
		ttl:         ttl,
	}
}

// Key digests everything that decides a verdict
func Key(req domain.JudgeRequest) string {
	h, _ := blake2b.New256(nil)
	for _, part := range []string{req.Judge, req.Language, req.Version, req.Code} {
		// length prefix keeps ("ab","c") apart from ("a","bc")
		_, _ = fmt.Fprintf(h, "%d:", len(part))
		_, _ = h.Write([]byte(part))
	}
	return verdictKeyPrefix + hex.EncodeToString(h.Sum(nil))
}

// Get retrieves a verdict, nil on a miss
func (c *VerdictCache) Get(ctx context.Context, req domain.JudgeRequest) (*domain.Verdict, error) {
	data, err := c.redisClient.Get(ctx, Key(req)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get verdict: %w", err)
	}

	var verdict domain.Verdict
	if err := json.Unmarshal(data, &verdict); err != nil {
		c.logger.Error("Failed to unmarshal verdict", "error", err)
		return nil, fmt.Errorf("failed to unmarshal verdict: %w", err)
	}

	return &verdict, nil
}

// Set saves a verdict with expiration
func (c *VerdictCache) Set(ctx context.Context, req domain.JudgeRequest, verdict *domain.Verdict) error {
	data, err := json.Marshal(verdict)
	if err != nil {
		return fmt.Errorf("failed to marshal verdict: %w", err)
	}

	if err := c.redisClient.Set(ctx, Key(req), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save verdict: %w", err)
	}
	return nil
}
