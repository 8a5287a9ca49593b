package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wallet-faucet/internal/adapter/http/middleware"
	redisStore "wallet-faucet/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedRouter(t *testing.T, limit int64) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	r := gin.New()
	rule := middleware.RateLimitRule{Limit: limit, Window: time.Minute}
	r.POST("/api/v1/wallets", middleware.RateLimiter(redisStore.NewRateLimitStore(client), "wallets", rule, zerolog.Nop()),
		func(c *gin.Context) { c.Status(http.StatusCreated) })
	return r, mr
}

func hit(r http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/wallets", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter(t *testing.T) {
	r, _ := newLimitedRouter(t, 2)

	tests := []struct {
		name          string
		remoteAddr    string
		wantStatus    int
		wantRemaining string
	}{
		{name: "first", remoteAddr: "10.0.0.1:4000", wantStatus: http.StatusCreated, wantRemaining: "1"},
		{name: "second", remoteAddr: "10.0.0.1:4001", wantStatus: http.StatusCreated, wantRemaining: "0"},
		{name: "over_limit", remoteAddr: "10.0.0.1:4002", wantStatus: http.StatusTooManyRequests, wantRemaining: "0"},
		{name: "other_client", remoteAddr: "10.0.0.2:4000", wantStatus: http.StatusCreated, wantRemaining: "1"},
	}

	// Cases share one counter and run in order.
	for _, tt := range tests {
		w := hit(r, tt.remoteAddr)

		assert.Equal(t, tt.wantStatus, w.Code, tt.name)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"), tt.name)
		assert.Equal(t, tt.wantRemaining, w.Header().Get("X-RateLimit-Remaining"), tt.name)
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"), tt.name)
	}
}

func TestRateLimiter_RejectionCarriesRetryAfter(t *testing.T) {
	r, _ := newLimitedRouter(t, 1)
	require.Equal(t, http.StatusCreated, hit(r, "10.0.0.9:1").Code)

	w := hit(r, "10.0.0.9:2")

	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "RATE_001")
}

func TestRateLimiter_DegradesWhenStoreDown(t *testing.T) {
	r, mr := newLimitedRouter(t, 1)
	mr.Close()

	w := hit(r, "10.0.0.1:1")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestDefaultRateLimitRules(t *testing.T) {
	rules := middleware.DefaultRateLimitRules()

	assert.Equal(t, int64(10), rules["wallets"].Limit)
	assert.Equal(t, int64(20), rules["wallets_topup"].Limit)
	assert.Equal(t, int64(30), rules["payments"].Limit)
	for group, rule := range rules {
		assert.Equal(t, time.Minute, rule.Window, group)
	}
}
