package postgres

import (
	"context"
	"errors"
	"fmt"

	"wallet-faucet/internal/core/domain"
	"wallet-faucet/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// WalletBindingRepo implements ports.WalletRegistry.
type WalletBindingRepo struct {
	pool Pool
}

var _ ports.WalletRegistry = (*WalletBindingRepo)(nil)

// NewWalletBindingRepo creates a new WalletBindingRepo.
func NewWalletBindingRepo(pool Pool) *WalletBindingRepo {
	return &WalletBindingRepo{pool: pool}
}

// Save records the binding. A re-issued address points at the newest app.
func (r *WalletBindingRepo) Save(ctx context.Context, b *domain.WalletBinding) error {
	query := `INSERT INTO wallet_bindings (address, app_id, wallet_name, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (address) DO UPDATE
		SET app_id = EXCLUDED.app_id, wallet_name = EXCLUDED.wallet_name, created_at = EXCLUDED.created_at`

	_, err := r.pool.Exec(ctx, query, b.Address, string(b.AppID), b.WalletName, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert wallet binding: %w", err)
	}
	return nil
}

// GetByName returns the newest binding for a wallet name, or nil if none.
func (r *WalletBindingRepo) GetByName(ctx context.Context, name string) (*domain.WalletBinding, error) {
	query := `SELECT address, app_id, wallet_name, created_at
		FROM wallet_bindings WHERE wallet_name = $1
		ORDER BY created_at DESC LIMIT 1`

	var (
		b     domain.WalletBinding
		appID string
	)
	err := r.pool.QueryRow(ctx, query, name).Scan(&b.Address, &appID, &b.WalletName, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet binding by name: %w", err)
	}
	b.AppID = domain.AppID(appID)
	return &b, nil
}
