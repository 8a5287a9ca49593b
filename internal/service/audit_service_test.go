package service

import (
	"context"
	"io"
	"testing"
	"time"

	"wallet-faucet/internal/core/domain"
	"wallet-faucet/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func TestAuditService_Log_PersistsToRepo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuditRepository(ctrl)
	svc := NewAuditService(mockRepo, newTestLogger())

	done := make(chan struct{})
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, log *domain.AuditLog) error {
			if log.Action != domain.AuditActionProvision {
				t.Errorf("expected PROVISION, got %s", log.Action)
			}
			if log.StatusCode != 201 {
				t.Errorf("expected status 201, got %d", log.StatusCode)
			}
			close(done)
			return nil
		},
	)

	// A cancelled request context must not prevent persistence.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc.Log(ctx, &domain.AuditLog{
		ID:           uuid.New(),
		Action:       domain.AuditActionProvision,
		ResourceType: "wallet",
		IPAddress:    "127.0.0.1",
		StatusCode:   201,
		CreatedAt:    time.Now(),
	})

	select {
	case <-done:
		// OK
	case <-time.After(2 * time.Second):
		t.Fatal("audit log not persisted in time")
	}
}

func TestAuditService_Log_NilRepo(t *testing.T) {
	svc := NewAuditService(nil, newTestLogger())

	// Should not panic
	svc.Log(context.Background(), &domain.AuditLog{
		ID:           uuid.New(),
		Action:       domain.AuditActionPay,
		ResourceType: "payment",
		ResourceID:   "alice@example.com",
		IPAddress:    "127.0.0.1",
		StatusCode:   200,
		CreatedAt:    time.Now(),
	})

	time.Sleep(50 * time.Millisecond) // let goroutine run
}
