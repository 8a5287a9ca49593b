package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionProvision AuditAction = "PROVISION"
	AuditActionPay       AuditAction = "PAY"
	AuditActionTopUp     AuditAction = "TOPUP"
)

// AuditLog records a single audited request.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	StatusCode   int         `json:"status_code"`
	CreatedAt    time.Time   `json:"created_at"`
}
