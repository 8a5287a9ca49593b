package handler

import (
	"wallet-faucet/internal/adapter/http/middleware"
	redisStore "wallet-faucet/internal/adapter/storage/redis"
	"wallet-faucet/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	ProvisioningSvc ports.ProvisioningService
	LookupSvc       ports.WalletLookupService
	PaymentSvc      ports.PaymentService
	AddressDomain   string                     // faucet wallets' lightning address domain
	RateLimitStore  *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers  []ports.HealthChecker
	AuditSvc        ports.AuditService // nil = audit logging disabled
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	walletHandler := NewWalletHandler(deps.ProvisioningSvc, deps.LookupSvc)
	wallets := v1.Group("/wallets")
	{
		wallets.POST("", rl("wallets"), walletHandler.Provision)
		wallets.POST("/topup", rl("wallets_topup"), walletHandler.TopUp)
	}

	paymentHandler := NewPaymentHandler(deps.PaymentSvc, deps.LookupSvc, deps.AddressDomain)
	v1.POST("/payments", rl("payments"), paymentHandler.Pay)

	return r
}
