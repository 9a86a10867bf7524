package leaderboardcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"gitlab.com/golf-2025.net/internal/core/ports/primary"
	"gitlab.com/golf-2025.net/internal/core/ports/secondary"
	"gitlab.com/golf-2025.net/internal/domain"
)

const (
	boardKeyPrefix      = "leaderboard:"
	generationKeyPrefix = "leaderboard:gen:"
)

var _ secondary.LeaderboardCache = (*LeaderboardCache)(nil)

// LeaderboardCache implements the LeaderboardCache interface with Redis.
// Every board has a generation counter; a board computed under an older
// generation is never written back.
type LeaderboardCache struct {
	redisClient *redis.Client
	logger      primary.Logger
	ttl         time.Duration
}

// NewLeaderboardCache creates a new Redis leaderboard cache
func NewLeaderboardCache(redisClient *redis.Client, logger primary.Logger, ttl time.Duration) *LeaderboardCache {
	return &LeaderboardCache{
		redisClient: redisClient,
		logger:      logger,
		ttl:         ttl,
	}
}

func boardKey(challenge int64, language string) string {
	return fmt.Sprintf("%s%d:%s", boardKeyPrefix, challenge, language)
}

func generationKey(challenge int64, language string) string {
	return fmt.Sprintf("%s%d:%s", generationKeyPrefix, challenge, language)
}

// Get retrieves a cached board, nil on a miss
func (c *LeaderboardCache) Get(ctx context.Context, challenge int64, language string) ([]domain.LeaderboardEntry, error) {
	data, err := c.redisClient.Get(ctx, boardKey(challenge, language)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	entries := make([]domain.LeaderboardEntry, 0)
	if err := json.Unmarshal(data, &entries); err != nil {
		c.logger.Error("Failed to unmarshal leaderboard", "challenge", challenge, "language", language, "error", err)
		return nil, fmt.Errorf("failed to unmarshal leaderboard: %w", err)
	}

	return entries, nil
}

// Generation returns the current invalidation counter, 0 when the board was never invalidated
func (c *LeaderboardCache) Generation(ctx context.Context, challenge int64, language string) (int64, error) {
	gen, err := c.redisClient.Get(ctx, generationKey(challenge, language)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get leaderboard generation: %w", err)
	}
	return gen, nil
}

// Set stores the board only while the generation is still the one it was computed under
func (c *LeaderboardCache) Set(ctx context.Context, challenge int64, language string, generation int64, entries []domain.LeaderboardEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal leaderboard: %w", err)
	}

	genKey := generationKey(challenge, language)
	err = c.redisClient.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			c.logger.Debug("Skipping stale leaderboard", "challenge", challenge, "language", language,
				"generation", generation, "current", current)
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, boardKey(challenge, language), data, c.ttl)
			return nil
		})
		return err
	}, genKey)

	// An invalidation raced the write; the board it computed is stale anyway
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to set leaderboard: %w", err)
	}
	return nil
}

// Invalidate drops the cached board and bumps its generation
func (c *LeaderboardCache) Invalidate(ctx context.Context, challenge int64, language string) error {
	_, err := c.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(challenge, language))
		pipe.Del(ctx, boardKey(challenge, language))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate leaderboard: %w", err)
	}
	return nil
}
