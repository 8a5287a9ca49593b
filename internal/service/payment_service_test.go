package service

import (
	"context"
	"testing"

	"wallet-faucet/internal/core/domain"
	"wallet-faucet/internal/core/ports/mocks"
	"wallet-faucet/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type paymentDeps struct {
	ctrl     *gomock.Controller
	resolver *mocks.MockLnurlResolver
	hub      *mocks.MockHubClient
	svc      *PaymentServiceImpl
}

func setupPayment(t *testing.T) *paymentDeps {
	ctrl := gomock.NewController(t)
	d := &paymentDeps{
		ctrl:     ctrl,
		resolver: mocks.NewMockLnurlResolver(ctrl),
		hub:      mocks.NewMockHubClient(ctrl),
	}
	d.svc = NewPaymentService(d.resolver, d.hub, newTestLogger())
	return d
}

func TestPaymentService_PayAddress_Success(t *testing.T) {
	d := setupPayment(t)
	defer d.ctrl.Finish()

	settled := &domain.PaymentOutcome{
		Amount:          500,
		Fee:             1,
		PaymentHash:     "hash",
		PaymentPreimage: "preimage",
		PaymentRequest:  "lnbc5u1p",
	}
	gomock.InOrder(
		d.resolver.EXPECT().Resolve(gomock.Any(), "alice@example.com", int64(500)).Return("lnbc5u1p", nil),
		d.hub.EXPECT().PayInvoice(gomock.Any(), "lnbc5u1p").Return(settled, nil),
	)

	outcome, err := d.svc.PayAddress(context.Background(), "alice@example.com", 500)

	require.NoError(t, err)
	assert.Equal(t, settled, outcome)
}

func TestPaymentService_PayAddress_MalformedAddressMakesNoCalls(t *testing.T) {
	d := setupPayment(t)
	defer d.ctrl.Finish()

	for _, addr := range []string{"not-an-address", "alice@", "@example.com", "alice@localhost"} {
		_, err := d.svc.PayAddress(context.Background(), addr, 10)
		assert.True(t, apperror.HasCode(err, apperror.CodeAddressMalformed), addr)
	}
}

func TestPaymentService_PayAddress_ResolveFails(t *testing.T) {
	d := setupPayment(t)
	defer d.ctrl.Finish()

	d.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return("", apperror.ErrAmountOutOfRange(0, 1, 100000))
	d.hub.EXPECT().PayInvoice(gomock.Any(), gomock.Any()).Times(0)

	outcome, err := d.svc.PayAddress(context.Background(), "alice@example.com", 0)

	assert.Nil(t, outcome)
	assert.True(t, apperror.HasCode(err, apperror.CodeAmountOutOfRange))
}

func TestPaymentService_PayAddress_PayFails(t *testing.T) {
	d := setupPayment(t)
	defer d.ctrl.Finish()

	d.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return("lnbc1", nil)
	d.hub.EXPECT().PayInvoice(gomock.Any(), "lnbc1").Return(nil, apperror.ErrHubRejected(400, "no route"))

	_, err := d.svc.PayAddress(context.Background(), "alice@example.com", 10)

	assert.True(t, apperror.HasCode(err, apperror.CodeHubRejected))
}
