package metrics

import (
	"errors"
	"fmt"
	"testing"

	"wallet-faucet/pkg/apperror"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "ok"},
		{"app error", apperror.ErrHubUnavailable(errors.New("dial")), apperror.CodeHubUnavailable},
		{"wrapped app error", fmt.Errorf("resolve: %w", apperror.ErrRecipientUnsupported("tag")), apperror.CodeRecipientUnsupported},
		{"plain error", errors.New("boom"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestCounters_Increment(t *testing.T) {
	before := testutil.ToFloat64(ProvisionsTotal.WithLabelValues("ok"))
	ProvisionsTotal.WithLabelValues("ok").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(ProvisionsTotal.WithLabelValues("ok")))

	before = testutil.ToFloat64(HubRequestsTotal.WithLabelValues("transfer", Status(nil)))
	HubRequestsTotal.WithLabelValues("transfer", Status(nil)).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(HubRequestsTotal.WithLabelValues("transfer", "ok")))
}
