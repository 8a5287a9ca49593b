package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"wallet-faucet/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBinding() *domain.WalletBinding {
	return &domain.WalletBinding{
		Address:    "test-wallet-1700000000-deadbeef@getalby.com",
		AppID:      "42",
		WalletName: "test-wallet-1700000000-deadbeef",
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}
}

func bindingColumns() []string {
	return []string{"address", "app_id", "wallet_name", "created_at"}
}

func TestWalletBindingRepo_Save(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletBindingRepo(mock)
	b := newTestBinding()

	mock.ExpectExec("INSERT INTO wallet_bindings .+ ON CONFLICT \\(address\\) DO UPDATE").
		WithArgs(b.Address, "42", b.WalletName, b.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Save(context.Background(), b)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletBindingRepo_Save_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletBindingRepo(mock)
	b := newTestBinding()

	mock.ExpectExec("INSERT INTO wallet_bindings").
		WithArgs(b.Address, "42", b.WalletName, b.CreatedAt).
		WillReturnError(errors.New("connection reset"))

	err = repo.Save(context.Background(), b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upsert wallet binding")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletBindingRepo_GetByName(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletBindingRepo(mock)
	b := newTestBinding()

	mock.ExpectQuery("SELECT .+ FROM wallet_bindings WHERE wallet_name").
		WithArgs(b.WalletName).
		WillReturnRows(pgxmock.NewRows(bindingColumns()).
			AddRow(b.Address, "42", b.WalletName, b.CreatedAt))

	result, err := repo.GetByName(context.Background(), b.WalletName)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, b, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletBindingRepo_GetByName_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletBindingRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM wallet_bindings WHERE wallet_name").
		WithArgs("nobody").
		WillReturnError(pgx.ErrNoRows)

	result, err := repo.GetByName(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletBindingRepo_GetByName_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletBindingRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM wallet_bindings").
		WithArgs("w").
		WillReturnError(errors.New("timeout"))

	result, err := repo.GetByName(context.Background(), "w")
	assert.Error(t, err)
	assert.Nil(t, result)
}
