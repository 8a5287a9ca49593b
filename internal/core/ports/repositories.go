package ports

import (
	"context"
	"time"

	"wallet-faucet/internal/core/domain"
)

// WalletRegistry is the durable address -> app index written at provisioning.
type WalletRegistry interface {
	Save(ctx context.Context, binding *domain.WalletBinding) error
	// GetByName returns the most recent binding for a wallet name, or nil if none.
	GetByName(ctx context.Context, name string) (*domain.WalletBinding, error)
}

// WalletIndexCache is the Redis-layer index (fast path).
type WalletIndexCache interface {
	Get(ctx context.Context, name string) (*domain.WalletBinding, error) // nil on miss
	Set(ctx context.Context, binding *domain.WalletBinding, ttl time.Duration) error
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}
