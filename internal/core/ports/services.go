package ports

import (
	"context"
	"iter"

	"wallet-faucet/internal/core/domain"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks
//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

// --- Outbound Ports (Hub, LNURL) ---

// HubClient talks to the custodial hub's REST API.
type HubClient interface {
	CreateApp(ctx context.Context, req CreateAppRequest) (*domain.Wallet, error)
	// Transfer credits amountSat from the operator reserve. amountSat must be > 0.
	Transfer(ctx context.Context, appID domain.AppID, amountSat int64) error
	CreateLightningAddress(ctx context.Context, appID domain.AppID, localpart string) error
	// ListApps returns a single-use sequence materialized from one response.
	ListApps(ctx context.Context) (iter.Seq[domain.AppSummary], error)
	PayInvoice(ctx context.Context, invoice string) (*domain.PaymentOutcome, error)
}

// CreateAppRequest holds the caller-chosen parts of a new wallet app.
type CreateAppRequest struct {
	Name        string
	Scopes      []string
	MetadataTag string
}

// LnurlResolver turns a lightning address and amount into a payable invoice.
type LnurlResolver interface {
	Resolve(ctx context.Context, address string, amountSat int64) (string, error)
}

// --- Service Ports (Business Logic) ---

// ProvisioningService creates funded, addressed test wallets.
type ProvisioningService interface {
	Provision(ctx context.Context, initialBalanceSat int64) (*domain.ProvisionResult, error)
}

// WalletLookupService credits an existing faucet wallet by its address.
type WalletLookupService interface {
	TopUp(ctx context.Context, address string, amountSat int64) (*domain.TopUpConfirmation, error)
}

// PaymentService pays arbitrary lightning addresses from the operator wallet.
type PaymentService interface {
	PayAddress(ctx context.Context, address string, amountSat int64) (*domain.PaymentOutcome, error)
}

// AuditService records audited requests.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
