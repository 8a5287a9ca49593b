package service

import (
	"context"

	"wallet-faucet/internal/core/domain"
	"wallet-faucet/internal/core/ports"
	"wallet-faucet/internal/metrics"
	"wallet-faucet/pkg/apperror"

	"github.com/rs/zerolog"
)

// PaymentServiceImpl implements ports.PaymentService.
type PaymentServiceImpl struct {
	resolver ports.LnurlResolver
	hub      ports.HubClient
	log      zerolog.Logger
}

// NewPaymentService creates a new PaymentServiceImpl.
func NewPaymentService(resolver ports.LnurlResolver, hub ports.HubClient, log zerolog.Logger) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		resolver: resolver,
		hub:      hub,
		log:      log,
	}
}

// PayAddress resolves address to an invoice for amountSat and pays it from
// the operator wallet. Nothing is contacted for a malformed address.
func (s *PaymentServiceImpl) PayAddress(ctx context.Context, address string, amountSat int64) (*domain.PaymentOutcome, error) {
	if !domain.IsLightningAddress(address) {
		err := apperror.ErrAddressMalformed(address)
		metrics.PaymentsTotal.WithLabelValues(metrics.Status(err)).Inc()
		return nil, err
	}

	invoice, err := s.resolver.Resolve(ctx, address, amountSat)
	if err != nil {
		metrics.PaymentsTotal.WithLabelValues(metrics.Status(err)).Inc()
		s.log.Warn().Err(err).Str("address", address).Int64("amount_sat", amountSat).Msg("invoice resolution failed")
		return nil, err
	}

	outcome, err := s.hub.PayInvoice(ctx, invoice)
	if err != nil {
		metrics.PaymentsTotal.WithLabelValues(metrics.Status(err)).Inc()
		s.log.Error().Err(err).Str("address", address).Int64("amount_sat", amountSat).Msg("invoice payment failed")
		return nil, err
	}

	metrics.PaymentsTotal.WithLabelValues(metrics.Status(nil)).Inc()
	metrics.PaymentFeesSatsTotal.Add(float64(outcome.Fee))

	s.log.Info().
		Str("address", address).
		Int64("amount_sat", amountSat).
		Int64("fee", outcome.Fee).
		Str("payment_hash", outcome.PaymentHash).
		Msg("payment settled")

	return outcome, nil
}
