package postgres

import (
	"context"
	"testing"
	"time"

	"wallet-faucet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepository(mock)
	entry := &domain.AuditLog{
		ID:           uuid.New(),
		Action:       domain.AuditActionProvision,
		ResourceType: "wallet",
		Details:      `{"path":"/api/v1/wallets"}`,
		IPAddress:    "10.0.0.1",
		StatusCode:   201,
		CreatedAt:    time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO audit_logs").
		WithArgs(entry.ID, "PROVISION", "wallet", "", &entry.Details, "10.0.0.1", 201, entry.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Create(context.Background(), entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_Create_NoDetails(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepository(mock)
	entry := &domain.AuditLog{
		ID:           uuid.New(),
		Action:       domain.AuditActionTopUp,
		ResourceType: "wallet",
		IPAddress:    "10.0.0.1",
		StatusCode:   200,
		CreatedAt:    time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO audit_logs").
		WithArgs(entry.ID, "TOPUP", "wallet", "", (*string)(nil), "10.0.0.1", 200, entry.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Create(context.Background(), entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}
