package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outbound calls and workflow outcomes. Status labels carry the apperror
// code ("ok" on success).

var (
	// Hub
	HubRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "faucet",
		Subsystem: "hub",
		Name:      "requests_total",
		Help:      "Total hub API requests by operation and outcome",
	}, []string{"operation", "status"})

	HubRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "faucet",
		Subsystem: "hub",
		Name:      "request_duration_seconds",
		Help:      "Hub API request duration",
		Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"operation"})

	HubRateLimitWaits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "faucet",
		Subsystem: "hub",
		Name:      "rate_limit_waits_total",
		Help:      "Hub requests delayed by the outbound limiter",
	})

	HubRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "faucet",
		Subsystem: "hub",
		Name:      "retries_total",
		Help:      "Hub request retries by operation",
	}, []string{"operation"})

	// LNURL
	LNURLStepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "faucet",
		Subsystem: "lnurl",
		Name:      "steps_total",
		Help:      "LNURL-pay protocol steps by stage (discovery, callback) and outcome",
	}, []string{"stage", "status"})

	LNURLRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "faucet",
		Subsystem: "lnurl",
		Name:      "retries_total",
		Help:      "LNURL request retries by stage",
	}, []string{"stage"})

	// Workflows
	ProvisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "faucet",
		Subsystem: "wallets",
		Name:      "provisions_total",
		Help:      "Wallet provisioning attempts by outcome",
	}, []string{"status"})

	ProvisionedSatsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "faucet",
		Subsystem: "wallets",
		Name:      "provisioned_sats_total",
		Help:      "Satoshis transferred into newly provisioned wallets",
	})

	TopUpsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "faucet",
		Subsystem: "wallets",
		Name:      "topups_total",
		Help:      "Wallet top-ups by lookup source and outcome",
	}, []string{"source", "status"})

	PaymentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "faucet",
		Subsystem: "payments",
		Name:      "total",
		Help:      "Lightning address payments by outcome",
	}, []string{"status"})

	PaymentFeesSatsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "faucet",
		Subsystem: "payments",
		Name:      "fees_sats_total",
		Help:      "Routing fees paid on settled payments",
	})
)
