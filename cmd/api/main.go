package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wallet-faucet/config"
	httpHandler "wallet-faucet/internal/adapter/http/handler"
	"wallet-faucet/internal/adapter/hub"
	"wallet-faucet/internal/adapter/lnurl"
	pgStorage "wallet-faucet/internal/adapter/storage/postgres"
	redisStorage "wallet-faucet/internal/adapter/storage/redis"
	"wallet-faucet/internal/core/ports"
	"wallet-faucet/internal/service"
	"wallet-faucet/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("WF_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("hub_url", cfg.Hub.URL).
		Str("address_domain", cfg.Wallet.AddressDomain).
		Msg("Starting wallet faucet")

	ctx := context.Background()

	var (
		registry       ports.WalletRegistry
		indexCache     ports.WalletIndexCache
		auditRepo      ports.AuditRepository
		rateLimitStore *redisStorage.RateLimitStore
		healthCheckers []ports.HealthChecker
	)

	// PostgreSQL (optional): durable address index + audit trail
	if cfg.Database.Enabled {
		if err := pgStorage.Migrate(cfg.Database, log); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply database migrations")
		}
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()

		registry = pgStorage.NewWalletBindingRepo(pool)
		auditRepo = pgStorage.NewAuditRepository(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
	}

	// Redis (optional): index cache + inbound rate limiting
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		indexCache = redisStorage.NewWalletIndexCache(rdb)
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	// Outbound clients
	hubClient := hub.NewClient(cfg.Hub, log, hub.WithBudgetRenewal(cfg.Wallet.BudgetRenewal))
	resolver := lnurl.NewResolver(cfg.LNURL, nil, log)

	// Business services
	provisioningSvc := service.NewProvisioningService(hubClient, registry, indexCache, cfg.Wallet, cfg.Redis.IndexTTL, log)
	lookupSvc := service.NewWalletLookupService(hubClient, registry, indexCache, cfg.Redis.IndexTTL, log)
	paymentSvc := service.NewPaymentService(resolver, hubClient, log)
	auditSvc := service.NewAuditService(auditRepo, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		ProvisioningSvc: provisioningSvc,
		LookupSvc:       lookupSvc,
		PaymentSvc:      paymentSvc,
		AddressDomain:   cfg.Wallet.AddressDomain,
		RateLimitStore:  rateLimitStore,
		HealthCheckers:  healthCheckers,
		AuditSvc:        auditSvc,
		Logger:          log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
