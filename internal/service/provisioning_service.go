package service

import (
	"context"
	"strings"
	"time"

	"wallet-faucet/config"
	"wallet-faucet/internal/core/domain"
	"wallet-faucet/internal/core/ports"
	"wallet-faucet/internal/metrics"
	"wallet-faucet/pkg/apperror"

	"github.com/rs/zerolog"
)

// ProvisioningServiceImpl implements ports.ProvisioningService.
type ProvisioningServiceImpl struct {
	hub      ports.HubClient
	registry ports.WalletRegistry   // nil when Postgres is disabled
	cache    ports.WalletIndexCache // nil when Redis is disabled
	cfg      config.WalletConfig
	indexTTL time.Duration
	log      zerolog.Logger

	now    func() time.Time
	suffix func() string
}

// NewProvisioningService creates a new ProvisioningServiceImpl.
// registry and cache may be nil.
func NewProvisioningService(
	hub ports.HubClient,
	registry ports.WalletRegistry,
	cache ports.WalletIndexCache,
	cfg config.WalletConfig,
	indexTTL time.Duration,
	log zerolog.Logger,
) *ProvisioningServiceImpl {
	return &ProvisioningServiceImpl{
		hub:      hub,
		registry: registry,
		cache:    cache,
		cfg:      cfg,
		indexTTL: indexTTL,
		log:      log,
		now:      time.Now,
		suffix:   domain.RandomSuffix,
	}
}

// Provision creates an isolated wallet, funds it with initialBalanceSat
// (skipped when zero) and assigns it a lightning address.
//
// Steps run strictly in order and are not rolled back: a failure after
// CreateApp leaves the wallet on the hub in whatever state it reached.
func (s *ProvisioningServiceImpl) Provision(ctx context.Context, initialBalanceSat int64) (*domain.ProvisionResult, error) {
	if initialBalanceSat < 0 {
		err := apperror.Validation("Initial balance must not be negative")
		metrics.ProvisionsTotal.WithLabelValues(metrics.Status(err)).Inc()
		return nil, err
	}

	name := domain.NewWalletName(s.cfg.NamePrefix, s.now(), s.suffix())

	wallet, err := s.hub.CreateApp(ctx, ports.CreateAppRequest{
		Name:        name,
		Scopes:      domain.DefaultScopes(),
		MetadataTag: s.cfg.MetadataTag,
	})
	if err != nil {
		return nil, s.fail(err, name, nil)
	}

	if initialBalanceSat > 0 {
		if err := s.hub.Transfer(ctx, wallet.ID, initialBalanceSat); err != nil {
			return nil, s.fail(err, name, wallet)
		}
		wallet.State = domain.WalletStateFunded
	}

	if err := s.hub.CreateLightningAddress(ctx, wallet.ID, wallet.Name); err != nil {
		return nil, s.fail(err, name, wallet)
	}
	wallet.State = domain.WalletStateAddressAssigned

	address := domain.FormatAddress(wallet.Name, s.cfg.AddressDomain)
	s.index(ctx, &domain.WalletBinding{
		Address:    address,
		AppID:      wallet.ID,
		WalletName: wallet.Name,
		CreatedAt:  s.now().UTC(),
	})

	metrics.ProvisionsTotal.WithLabelValues(metrics.Status(nil)).Inc()
	metrics.ProvisionedSatsTotal.Add(float64(initialBalanceSat))

	s.log.Info().
		Str("wallet_id", wallet.ID.String()).
		Str("wallet_name", wallet.Name).
		Str("lightning_address", address).
		Int64("balance_sat", initialBalanceSat).
		Msg("wallet provisioned")

	return &domain.ProvisionResult{
		PairingURI:       withLud16(wallet.PairingURI, address),
		LightningAddress: address,
		WalletID:         wallet.ID,
		WalletName:       wallet.Name,
	}, nil
}

// fail records a provisioning failure. A non-nil wallet means the hub
// already holds a partially provisioned app.
func (s *ProvisioningServiceImpl) fail(err error, name string, wallet *domain.Wallet) error {
	metrics.ProvisionsTotal.WithLabelValues(metrics.Status(err)).Inc()

	ev := s.log.Error().Err(err).Str("wallet_name", name)
	if wallet != nil {
		ev = ev.Str("wallet_id", wallet.ID.String()).Str("state", string(wallet.State))
	}
	ev.Msg("wallet provisioning failed")
	return err
}

// index records the address binding in Postgres and Redis. Both are
// best-effort; the hub listing remains the fallback for lookups.
func (s *ProvisioningServiceImpl) index(ctx context.Context, binding *domain.WalletBinding) {
	if s.registry != nil {
		if err := s.registry.Save(ctx, binding); err != nil {
			s.log.Warn().Err(err).Str("address", binding.Address).Msg("failed to persist wallet binding")
		}
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, binding, s.indexTTL); err != nil {
			s.log.Warn().Err(err).Str("address", binding.Address).Msg("failed to cache wallet binding")
		}
	}
}

// withLud16 appends the lightning address to the pairing URI so wallet
// apps can display it after connecting.
func withLud16(pairingURI, address string) string {
	sep := "&"
	if !strings.Contains(pairingURI, "?") {
		sep = "?"
	}
	return pairingURI + sep + "lud16=" + address
}
