package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"wallet-faucet/internal/core/domain"
	"wallet-faucet/internal/core/ports"
	"wallet-faucet/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog creates an audit middleware for faucet operations. Every
// outcome is recorded, since failed payouts matter as much as successful
// ones.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method != http.MethodPost {
			return
		}

		action, resourceType := mapPathToAction(c.Request.URL.Path, c.Request.Method)
		if action == "" {
			return
		}
		if override, ok := c.Get(CtxAuditAction); ok {
			if a, ok := override.(domain.AuditAction); ok {
				action = a
			}
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"request_id": c.GetString(response.CtxRequestID),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   c.GetString(CtxAuditResourceID),
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			StatusCode:   c.Writer.Status(),
			CreatedAt:    time.Now(),
		})
	}
}

func mapPathToAction(path, method string) (domain.AuditAction, string) {
	switch {
	case path == "/api/v1/wallets" && method == http.MethodPost:
		return domain.AuditActionProvision, "wallet"
	case path == "/api/v1/wallets/topup" && method == http.MethodPost:
		return domain.AuditActionTopUp, "wallet"
	case path == "/api/v1/payments" && method == http.MethodPost:
		return domain.AuditActionPay, "payment"
	}
	return "", ""
}
