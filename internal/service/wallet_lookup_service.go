package service

import (
	"context"
	"time"

	"wallet-faucet/internal/core/domain"
	"wallet-faucet/internal/core/ports"
	"wallet-faucet/internal/metrics"
	"wallet-faucet/pkg/apperror"

	"github.com/rs/zerolog"
)

// Lookup sources, reported on the top-up metric.
const (
	sourceCache    = "cache"
	sourceRegistry = "registry"
	sourceHub      = "hub"
)

// WalletLookupServiceImpl implements ports.WalletLookupService.
type WalletLookupServiceImpl struct {
	hub      ports.HubClient
	registry ports.WalletRegistry   // optional
	cache    ports.WalletIndexCache // optional
	indexTTL time.Duration
	log      zerolog.Logger
}

// NewWalletLookupService creates a new WalletLookupServiceImpl.
// registry and cache may be nil; the hub app listing is always consulted last.
func NewWalletLookupService(
	hub ports.HubClient,
	registry ports.WalletRegistry,
	cache ports.WalletIndexCache,
	indexTTL time.Duration,
	log zerolog.Logger,
) *WalletLookupServiceImpl {
	return &WalletLookupServiceImpl{
		hub:      hub,
		registry: registry,
		cache:    cache,
		indexTTL: indexTTL,
		log:      log,
	}
}

// TopUp credits amountSat to the faucet wallet whose name equals the
// address localpart.
func (s *WalletLookupServiceImpl) TopUp(ctx context.Context, address string, amountSat int64) (*domain.TopUpConfirmation, error) {
	name := domain.Localpart(address)
	if name == "" {
		return nil, apperror.ErrAddressMalformed(address)
	}
	if amountSat <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	appID, source, err := s.locate(ctx, name, address)
	if err != nil {
		metrics.TopUpsTotal.WithLabelValues(source, metrics.Status(err)).Inc()
		s.log.Warn().Err(err).Str("wallet_name", name).Msg("top-up lookup failed")
		return nil, err
	}

	if err := s.hub.Transfer(ctx, appID, amountSat); err != nil {
		metrics.TopUpsTotal.WithLabelValues(source, metrics.Status(err)).Inc()
		s.log.Error().Err(err).
			Str("wallet_id", appID.String()).
			Str("wallet_name", name).
			Int64("amount_sat", amountSat).
			Msg("top-up transfer failed")
		return nil, err
	}

	metrics.TopUpsTotal.WithLabelValues(source, metrics.Status(nil)).Inc()
	s.log.Info().
		Str("wallet_id", appID.String()).
		Str("wallet_name", name).
		Str("source", source).
		Int64("amount_sat", amountSat).
		Msg("wallet topped up")

	return &domain.TopUpConfirmation{
		WalletID:   appID,
		WalletName: name,
		Address:    address,
		AmountSat:  amountSat,
	}, nil
}

// locate resolves a wallet name to its app id: Redis, then Postgres, then
// an exact-name scan of the hub listing. Index failures fall through.
func (s *WalletLookupServiceImpl) locate(ctx context.Context, name, address string) (domain.AppID, string, error) {
	// Layer 1: Redis
	if s.cache != nil {
		binding, err := s.cache.Get(ctx, name)
		if err != nil {
			s.log.Warn().Err(err).Str("wallet_name", name).Msg("redis wallet lookup failed, falling through")
		}
		if binding != nil {
			return binding.AppID, sourceCache, nil
		}
	}

	// Layer 2: Postgres
	if s.registry != nil {
		binding, err := s.registry.GetByName(ctx, name)
		if err != nil {
			s.log.Warn().Err(err).Str("wallet_name", name).Msg("db wallet lookup failed, falling through")
		}
		if binding != nil {
			s.backfill(ctx, binding)
			return binding.AppID, sourceRegistry, nil
		}
	}

	// Layer 3: hub listing
	apps, err := s.hub.ListApps(ctx)
	if err != nil {
		return "", sourceHub, err
	}
	for app := range apps {
		if app.Name == name {
			s.backfill(ctx, &domain.WalletBinding{
				Address:    address,
				AppID:      app.ID,
				WalletName: app.Name,
				CreatedAt:  time.Now().UTC(),
			})
			return app.ID, sourceHub, nil
		}
	}
	return "", sourceHub, apperror.ErrWalletNotFound(name)
}

func (s *WalletLookupServiceImpl) backfill(ctx context.Context, binding *domain.WalletBinding) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, binding, s.indexTTL); err != nil {
		s.log.Warn().Err(err).Str("wallet_name", binding.WalletName).Msg("failed to cache wallet binding")
	}
}
