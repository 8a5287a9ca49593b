package hub

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"net/http"
	"strings"
	"time"

	"wallet-faucet/config"
	"wallet-faucet/internal/core/domain"
	"wallet-faucet/internal/core/ports"
	"wallet-faucet/internal/metrics"
	"wallet-faucet/pkg/apperror"
	"wallet-faucet/pkg/logger"
	"wallet-faucet/pkg/retrypolicy"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Operator routing headers sent with every hub request.
const (
	HeaderOperatorName   = "AlbyHub-Name"
	HeaderOperatorRegion = "AlbyHub-Region"
)

const (
	pathApps               = "/api/apps"
	pathTransfers          = "/api/transfers"
	pathLightningAddresses = "/api/lightning-addresses"
	pathPayBolt11          = "/api/payments/bolt11"

	defaultBudgetRenewal = "monthly"
	maxResponseBytes     = 4 << 20
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.HubClient over the hub REST API.
type Client struct {
	baseURL        string
	token          string
	operatorName   string
	operatorRegion string
	budgetRenewal  string
	httpClient     HTTPClient
	limiter        *rate.Limiter // nil = unlimited
	retry          config.RetryConfig
	log            zerolog.Logger
}

var _ ports.HubClient = (*Client)(nil)

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc HTTPClient) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBudgetRenewal sets the budget renewal period sent on app creation.
func WithBudgetRenewal(period string) Option {
	return func(c *Client) {
		if period != "" {
			c.budgetRenewal = period
		}
	}
}

// NewClient builds a hub client from startup configuration. cfg.URL is
// expected to be validated already.
func NewClient(cfg config.HubConfig, log zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:        strings.TrimRight(cfg.URL, "/"),
		token:          cfg.Token,
		operatorName:   cfg.OperatorName,
		operatorRegion: cfg.OperatorRegion,
		budgetRenewal:  defaultBudgetRenewal,
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		retry:          cfg.Retry,
		log:            logger.Component(log, "hub"),
	}
	if cfg.RateLimitRPS > 0 {
		burst := cfg.RateLimitBurst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), burst)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type appMetadata struct {
	Tag string `json:"tag"`
}

type createAppBody struct {
	Name          string      `json:"name"`
	Pubkey        string      `json:"pubkey"`
	BudgetRenewal string      `json:"budgetRenewal"`
	MaxAmount     int64       `json:"maxAmount"` // 0 = no spending cap
	Scopes        []string    `json:"scopes"`
	ReturnTo      string      `json:"returnTo"`
	Isolated      bool        `json:"isolated"`
	Metadata      appMetadata `json:"metadata"`
}

type createAppResponse struct {
	ID         domain.AppID `json:"id"`
	Name       string       `json:"name"`
	PairingURI string       `json:"pairingUri"`
}

// CreateApp creates an isolated wallet app with no spending cap.
func (c *Client) CreateApp(ctx context.Context, req ports.CreateAppRequest) (*domain.Wallet, error) {
	body := createAppBody{
		Name:          req.Name,
		BudgetRenewal: c.budgetRenewal,
		MaxAmount:     0,
		Scopes:        req.Scopes,
		Isolated:      true,
		Metadata:      appMetadata{Tag: req.MetadataTag},
	}

	var resp createAppResponse
	if err := c.do(ctx, opCreateApp, body, &resp); err != nil {
		return nil, err
	}
	if resp.PairingURI == "" {
		return nil, apperror.ErrHubResponseInvalid("app created without a pairing URI")
	}
	if resp.ID == "" {
		return nil, apperror.ErrHubResponseInvalid("app created without an id")
	}

	name := resp.Name
	if name == "" {
		name = req.Name
	}
	return &domain.Wallet{
		ID:         resp.ID,
		Name:       name,
		PairingURI: resp.PairingURI,
		Scopes:     req.Scopes,
		State:      domain.WalletStateCreated,
	}, nil
}

type transferBody struct {
	ToAppID   domain.AppID `json:"toAppId"`
	AmountSat int64        `json:"amountSat"`
}

// Transfer moves amountSat from the operator reserve into the app.
// Non-positive amounts are rejected without calling the hub.
func (c *Client) Transfer(ctx context.Context, appID domain.AppID, amountSat int64) error {
	if amountSat <= 0 {
		return apperror.ErrInvalidAmount()
	}
	return c.do(ctx, opTransfer, transferBody{ToAppID: appID, AmountSat: amountSat}, nil)
}

type lightningAddressBody struct {
	Address string       `json:"address"`
	AppID   domain.AppID `json:"appId"`
}

// CreateLightningAddress binds localpart to the app.
func (c *Client) CreateLightningAddress(ctx context.Context, appID domain.AppID, localpart string) error {
	return c.do(ctx, opCreateLightningAddress, lightningAddressBody{Address: localpart, AppID: appID}, nil)
}

// ListApps fetches every app visible to the operator token.
func (c *Client) ListApps(ctx context.Context) (iter.Seq[domain.AppSummary], error) {
	var raw json.RawMessage
	if err := c.do(ctx, opListApps, nil, &raw); err != nil {
		return nil, err
	}
	apps, err := decodeAppList(raw)
	if err != nil {
		return nil, apperror.ErrHubResponseInvalid(err.Error())
	}
	return singleUse(apps), nil
}

type payInvoiceBody struct {
	Invoice string `json:"invoice"`
}

// PayInvoice settles a BOLT11 invoice from the operator wallet.
func (c *Client) PayInvoice(ctx context.Context, invoice string) (*domain.PaymentOutcome, error) {
	var outcome domain.PaymentOutcome
	if err := c.do(ctx, opPayInvoice, payInvoiceBody{Invoice: invoice}, &outcome); err != nil {
		return nil, err
	}
	if !outcome.Settled() {
		return nil, apperror.ErrHubRejected(http.StatusOK, "payment returned no preimage")
	}
	return &outcome, nil
}

// operation describes one hub endpoint call.
type operation struct {
	name   string
	method string
	path   string
	// idempotent requests go through the retry policy; the rest are sent once.
	idempotent bool
	// missingEndpoint maps 404 to HubEndpointMissing. Elsewhere a 404 is the
	// hub refusing the request (e.g. an unknown app) and stays HubRejected.
	missingEndpoint bool
}

var (
	opCreateApp              = operation{name: "create_app", method: http.MethodPost, path: pathApps, missingEndpoint: true}
	opTransfer               = operation{name: "transfer", method: http.MethodPost, path: pathTransfers}
	opCreateLightningAddress = operation{name: "create_lightning_address", method: http.MethodPost, path: pathLightningAddresses}
	opListApps               = operation{name: "list_apps", method: http.MethodGet, path: pathApps, idempotent: true}
	opPayInvoice             = operation{name: "pay_invoice", method: http.MethodPost, path: pathPayBolt11}
)

// do sends one logical hub request.
func (c *Client) do(ctx context.Context, op operation, body, out any) error {
	start := time.Now()

	send := func() error { return c.send(ctx, op, body, out) }

	var err error
	if op.idempotent {
		policy := retrypolicy.Policy{
			Attempts:  c.retry.Attempts,
			Delay:     c.retry.Delay,
			Retryable: isTransient,
			OnRetry: func(n uint, err error) {
				metrics.HubRetries.WithLabelValues(op.name).Inc()
				c.log.Warn().Err(err).Str("operation", op.name).Uint("attempt", n+1).Msg("hub request failed, retrying")
			},
		}
		err = policy.Do(ctx, send)
	} else {
		err = send()
	}

	elapsed := time.Since(start)
	metrics.HubRequestDuration.WithLabelValues(op.name).Observe(elapsed.Seconds())
	metrics.HubRequestsTotal.WithLabelValues(op.name, metrics.Status(err)).Inc()

	ev := c.log.Debug()
	if err != nil {
		ev = c.log.Warn().Err(err)
	}
	ev.Str("operation", op.name).Str("method", op.method).Str("path", op.path).Dur("elapsed", elapsed).Msg("hub request")

	return err
}

func (c *Client) send(ctx context.Context, op operation, body, out any) error {
	if err := c.wait(ctx); err != nil {
		return apperror.ErrHubUnavailable(err)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("marshal hub request: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, op.method, c.baseURL+op.path, reader)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("build hub request: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set(HeaderOperatorName, c.operatorName)
	req.Header.Set(HeaderOperatorRegion, c.operatorRegion)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperror.ErrHubUnavailable(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return apperror.ErrHubUnavailable(fmt.Errorf("read response: %w", err))
	}

	switch {
	case resp.StatusCode == http.StatusNotFound && op.missingEndpoint:
		return apperror.ErrHubEndpointMissing(op.method + " " + op.path)
	case resp.StatusCode >= 500:
		return apperror.ErrHubUnavailable(fmt.Errorf("status %d: %s", resp.StatusCode, errorReason(respBody)))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return apperror.ErrHubRejected(resp.StatusCode, errorReason(respBody))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return apperror.ErrHubResponseInvalid(fmt.Sprintf("decode %s %s: %v", op.method, op.path, err))
	}
	return nil
}

// wait blocks on the outbound limiter, if one is configured.
func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	r := c.limiter.Reserve()
	if !r.OK() {
		return errors.New("hub rate limiter: cannot reserve token")
	}
	delay := r.Delay()
	if delay <= 0 {
		return nil
	}
	metrics.HubRateLimitWaits.Inc()
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		r.Cancel()
		return ctx.Err()
	}
}

func isTransient(err error) bool {
	return apperror.HasCode(err, apperror.CodeHubUnavailable)
}

// errorReason extracts the hub's error message, falling back to the raw body.
func errorReason(body []byte) string {
	var e struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(body, &e) == nil {
		if e.Message != "" {
			return e.Message
		}
		if e.Error != "" {
			return e.Error
		}
	}
	reason := strings.TrimSpace(string(body))
	if len(reason) > 200 {
		reason = reason[:200]
	}
	return reason
}
