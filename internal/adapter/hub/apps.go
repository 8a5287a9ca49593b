package hub

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"sync/atomic"

	"wallet-faucet/internal/core/domain"
)

// decodeAppList accepts both a bare array and the paginated
// {"apps": [...], "totalCount": n} envelope.
func decodeAppList(raw json.RawMessage) ([]domain.AppSummary, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	var apps []domain.AppSummary
	if raw[0] == '[' {
		if err := json.Unmarshal(raw, &apps); err != nil {
			return nil, fmt.Errorf("decode app list: %w", err)
		}
		return apps, nil
	}

	var page struct {
		Apps []domain.AppSummary `json:"apps"`
	}
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("decode app list: %w", err)
	}
	return page.Apps, nil
}

// singleUse yields apps once; later iterations yield nothing.
func singleUse(apps []domain.AppSummary) iter.Seq[domain.AppSummary] {
	var consumed atomic.Bool
	return func(yield func(domain.AppSummary) bool) {
		if consumed.Swap(true) {
			return
		}
		for _, app := range apps {
			if !yield(app) {
				return
			}
		}
	}
}
