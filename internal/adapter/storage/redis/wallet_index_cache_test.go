package redis

import (
	"context"
	"testing"
	"time"

	"wallet-faucet/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBinding() *domain.WalletBinding {
	return &domain.WalletBinding{
		Address:    "test-wallet-1700000000-deadbeef@getalby.com",
		AppID:      "42",
		WalletName: "test-wallet-1700000000-deadbeef",
		CreatedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestWalletIndexCache_SetAndGet(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewWalletIndexCache(client)
	ctx := context.Background()
	b := newTestBinding()

	// Get before set => nil
	result, err := cache.Get(ctx, b.WalletName)
	assert.NoError(t, err)
	assert.Nil(t, result)

	require.NoError(t, cache.Set(ctx, b, time.Hour))

	result, err = cache.Get(ctx, b.WalletName)
	require.NoError(t, err)
	assert.Equal(t, b, result)
	assert.True(t, s.Exists("wallet:name:"+b.WalletName))
}

func TestWalletIndexCache_TTLExpiry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewWalletIndexCache(client)
	ctx := context.Background()
	b := newTestBinding()

	require.NoError(t, cache.Set(ctx, b, time.Minute))
	s.FastForward(2 * time.Minute)

	result, err := cache.Get(ctx, b.WalletName)
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestWalletIndexCache_NoTTL(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewWalletIndexCache(client)
	b := newTestBinding()

	require.NoError(t, cache.Set(context.Background(), b, 0))
	assert.Equal(t, time.Duration(0), s.TTL("wallet:name:"+b.WalletName))
}

func TestWalletIndexCache_CorruptEntry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewWalletIndexCache(client)

	require.NoError(t, s.Set("wallet:name:broken", "not-json"))

	result, err := cache.Get(context.Background(), "broken")
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestHealthCheck(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})

	hc := NewHealthCheck(client)
	assert.Equal(t, "redis", hc.Name())
	assert.NoError(t, hc.Ping(context.Background()))

	s.Close()
	assert.Error(t, hc.Ping(context.Background()))
}
