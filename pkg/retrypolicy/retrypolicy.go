// Package retrypolicy wraps retry-go behind an explicit, opt-in policy.
// The zero value and Attempts <= 1 mean "call once, never retry".
package retrypolicy

import (
	"context"
	"time"

	"github.com/avast/retry-go"
)

// Policy configures retries at an outbound client boundary.
type Policy struct {
	Attempts uint
	Delay    time.Duration
	// Retryable decides which errors are worth another attempt. nil retries none.
	Retryable func(error) bool
	// OnRetry is called before each new attempt (n is the failed attempt, 0-based).
	OnRetry func(n uint, err error)
}

// Enabled reports whether the policy can issue more than one attempt.
func (p Policy) Enabled() bool {
	return p.Attempts > 1 && p.Retryable != nil
}

// Do runs fn under the policy and returns the last error.
func (p Policy) Do(ctx context.Context, fn func() error) error {
	if !p.Enabled() {
		return fn()
	}

	opts := []retry.Option{
		retry.Context(ctx),
		retry.Attempts(p.Attempts),
		retry.Delay(p.Delay),
		retry.DelayType(retry.BackOffDelay),
		retry.RetryIf(p.Retryable),
		retry.LastErrorOnly(true),
	}
	if p.OnRetry != nil {
		opts = append(opts, retry.OnRetry(p.OnRetry))
	}
	return retry.Do(fn, opts...)
}
