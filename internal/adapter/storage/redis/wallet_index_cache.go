package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wallet-faucet/internal/core/domain"
	"wallet-faucet/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// WalletIndexCache implements ports.WalletIndexCache using Redis.
// Entries are keyed by wallet name and hold the JSON-encoded binding.
type WalletIndexCache struct {
	client *goredis.Client
	prefix string
}

var _ ports.WalletIndexCache = (*WalletIndexCache)(nil)

// NewWalletIndexCache creates a new Redis-backed wallet index.
func NewWalletIndexCache(client *goredis.Client) *WalletIndexCache {
	return &WalletIndexCache{
		client: client,
		prefix: "wallet:name:",
	}
}

// Get returns the cached binding for name, or nil, nil on a miss.
func (c *WalletIndexCache) Get(ctx context.Context, name string) (*domain.WalletBinding, error) {
	val, err := c.client.Get(ctx, c.prefix+name).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis wallet index get: %w", err)
	}

	var b domain.WalletBinding
	if err := json.Unmarshal(val, &b); err != nil {
		return nil, fmt.Errorf("redis wallet index decode: %w", err)
	}
	return &b, nil
}

// Set stores the binding under its wallet name. ttl <= 0 keeps it forever.
func (c *WalletIndexCache) Set(ctx context.Context, b *domain.WalletBinding, ttl time.Duration) error {
	val, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("redis wallet index encode: %w", err)
	}
	if ttl < 0 {
		ttl = 0
	}
	if err := c.client.Set(ctx, c.prefix+b.WalletName, val, ttl).Err(); err != nil {
		return fmt.Errorf("redis wallet index set: %w", err)
	}
	return nil
}
