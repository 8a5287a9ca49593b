package lnurl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"wallet-faucet/config"
	"wallet-faucet/internal/core/domain"
	"wallet-faucet/internal/core/ports"
	"wallet-faucet/internal/metrics"
	"wallet-faucet/pkg/apperror"
	"wallet-faucet/pkg/logger"
	"wallet-faucet/pkg/retrypolicy"

	"github.com/rs/zerolog"
)

const (
	stageDiscovery = "discovery"
	stageCallback  = "callback"

	wellKnownPrefix  = "/.well-known/lnurlp/"
	maxResponseBytes = 1 << 20
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Resolver implements the LNURL-pay client flow (LUD-06, LUD-16).
type Resolver struct {
	httpClient HTTPClient
	retry      config.RetryConfig
	log        zerolog.Logger
}

var _ ports.LnurlResolver = (*Resolver)(nil)

// NewResolver creates a resolver. A nil httpClient gets a default client
// using cfg.Timeout.
func NewResolver(cfg config.LNURLConfig, httpClient HTTPClient, log zerolog.Logger) *Resolver {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Resolver{
		httpClient: httpClient,
		retry:      cfg.Retry,
		log:        logger.Component(log, "lnurl"),
	}
}

// Resolve fetches a payable invoice for amountSat from the address owner.
func (r *Resolver) Resolve(ctx context.Context, address string, amountSat int64) (string, error) {
	localpart, host, ok := domain.SplitAddress(address)
	if !ok {
		return "", apperror.ErrAddressMalformed(address)
	}

	discoveryURL := (&url.URL{Scheme: "https", Host: host, Path: wellKnownPrefix + localpart}).String()

	var doc json.RawMessage
	if err := r.fetch(ctx, stageDiscovery, discoveryURL, &doc); err != nil {
		return "", err
	}
	payReq, err := decodePayRequest(doc)
	if err != nil {
		return "", err
	}

	minSat, maxSat := payReq.MinSendable.Sat(), payReq.MaxSendable.Sat()
	if amountSat < minSat || amountSat > maxSat {
		return "", apperror.ErrAmountOutOfRange(amountSat, minSat, maxSat)
	}

	callbackURL, err := buildCallbackURL(payReq.Callback, amountSat)
	if err != nil {
		return "", err
	}

	var invoice domain.InvoiceResponse
	if err := r.fetch(ctx, stageCallback, callbackURL, &invoice); err != nil {
		return "", err
	}
	if invoice.PR == "" {
		reason := "callback returned no invoice"
		if invoice.Reason != "" {
			reason += ": " + invoice.Reason
		}
		return "", apperror.ErrRecipientResponseInvalid(reason)
	}

	r.log.Debug().
		Str("address", address).
		Int64("amount_sat", amountSat).
		Msg("lightning address resolved")

	return invoice.PR, nil
}

// decodePayRequest checks the tag before anything else, so a service that
// is not LNURL-pay is reported as unsupported whatever its other fields hold.
func decodePayRequest(doc json.RawMessage) (*domain.PayRequest, error) {
	var head struct {
		Tag    string `json:"tag"`
		Status string `json:"status"`
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal(doc, &head); err != nil {
		return nil, apperror.ErrRecipientResponseInvalid(fmt.Sprintf("decode discovery: %v", err))
	}
	if head.Tag != domain.TagPayRequest {
		reason := fmt.Sprintf("unexpected tag %q", head.Tag)
		if strings.EqualFold(head.Status, domain.LNURLStatusError) && head.Reason != "" {
			reason = head.Reason
		}
		return nil, apperror.ErrRecipientUnsupported(reason)
	}

	var payReq domain.PayRequest
	if err := json.Unmarshal(doc, &payReq); err != nil {
		return nil, apperror.ErrRecipientResponseInvalid(fmt.Sprintf("decode pay request: %v", err))
	}
	return &payReq, nil
}

// buildCallbackURL sets amount (in millisats) on the callback, keeping any
// query parameters the service already put there.
func buildCallbackURL(callback string, amountSat int64) (string, error) {
	u, err := url.Parse(callback)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", apperror.ErrRecipientResponseInvalid(fmt.Sprintf("invalid callback URL %q", callback))
	}
	q := u.Query()
	q.Set("amount", strconv.FormatInt(domain.SatToMillisats(amountSat), 10))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (r *Resolver) fetch(ctx context.Context, stage, target string, out any) error {
	policy := retrypolicy.Policy{
		Attempts:  r.retry.Attempts,
		Delay:     r.retry.Delay,
		Retryable: isTransient,
		OnRetry: func(n uint, err error) {
			metrics.LNURLRetries.WithLabelValues(stage).Inc()
			r.log.Warn().Err(err).Str("stage", stage).Uint("attempt", n+1).Msg("lnurl request failed, retrying")
		},
	}

	err := policy.Do(ctx, func() error { return r.get(ctx, target, out) })
	metrics.LNURLStepsTotal.WithLabelValues(stage, metrics.Status(err)).Inc()
	if err != nil {
		r.log.Warn().Err(err).Str("stage", stage).Str("url", target).Msg("lnurl request failed")
	}
	return err
}

func (r *Resolver) get(ctx context.Context, target string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return apperror.ErrRecipientResponseInvalid(fmt.Sprintf("invalid URL %q", target))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return apperror.ErrRecipientUnreachable(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return apperror.ErrRecipientUnreachable(fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperror.ErrRecipientUnreachable(fmt.Errorf("status %d%s", resp.StatusCode, errorSuffix(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return apperror.ErrRecipientResponseInvalid(fmt.Sprintf("decode response: %v", err))
	}
	return nil
}

func isTransient(err error) bool {
	return apperror.HasCode(err, apperror.CodeRecipientUnreachable)
}

// errorSuffix renders an LNURL {"status":"ERROR","reason":...} body, if any.
func errorSuffix(body []byte) string {
	var e struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	}
	if json.Unmarshal(body, &e) == nil && strings.EqualFold(e.Status, domain.LNURLStatusError) && e.Reason != "" {
		return ": " + e.Reason
	}
	return ""
}
