package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/dino-pet-server/internal/logger"
)

// AttemptLimitRepository throttles repeated auth attempts using Redis counters.
type AttemptLimitRepository struct {
	client *redis.Client
	max    int64         // attempts allowed per window
	window time.Duration // counter lifetime
}

// NewAttemptLimitRepository creates a limiter allowing max attempts per window.
func NewAttemptLimitRepository(client *redis.Client, max int, window time.Duration) *AttemptLimitRepository {
	return &AttemptLimitRepository{
		client: client,
		max:    int64(max),
		window: window,
	}
}

// Allow counts an attempt against the key and reports whether it is still within
// the limit. The first attempt in a window sets the counter's expiry.
func (r *AttemptLimitRepository) Allow(ctx context.Context, key string) (bool, error) {
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		logger.Log.Errorw("attempt counter unavailable", "key", key, "error", err)
		return false, err
	}

	if count == 1 {
		if err := r.client.Expire(ctx, key, r.window).Err(); err != nil {
			logger.Log.Errorw("failed to set attempt counter expiry", "key", key, "error", err)
			return false, err
		}
	}

	logger.Log.Infow("attempt counted",
		"key", key,
		"count", count,
		"max", r.max,
	)

	return count <= r.max, nil
}
