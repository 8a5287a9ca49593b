package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const rateLimitPrefix = "faucet:ratelimit:"

// RateLimitStore counts requests per client in fixed windows.
type RateLimitStore struct {
	client *goredis.Client
}

func NewRateLimitStore(client *goredis.Client) *RateLimitStore {
	return &RateLimitStore{client: client}
}

// RateLimitResult is the state of one client's window after a hit.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // unix seconds
}

// Allow records a hit for key and reports whether it fits within limit.
// Each window gets its own counter key, so the TTL only has to outlive the window.
func (s *RateLimitStore) Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error) {
	span := max(int64(window/time.Second), 1)
	bucket := time.Now().Unix() / span
	counterKey := fmt.Sprintf("%s%s:%d", rateLimitPrefix, key, bucket)

	var hits *goredis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		hits = pipe.Incr(ctx, counterKey)
		pipe.Expire(ctx, counterKey, time.Duration(span+1)*time.Second)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("rate limit hit %s: %w", key, err)
	}

	count := hits.Val()
	return &RateLimitResult{
		Allowed:   count <= limit,
		Limit:     limit,
		Remaining: max(limit-count, 0),
		ResetAt:   (bucket + 1) * span,
	}, nil
}
