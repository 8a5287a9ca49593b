package handler

import (
	"strings"

	"wallet-faucet/internal/adapter/http/dto"
	"wallet-faucet/internal/adapter/http/middleware"
	"wallet-faucet/internal/core/domain"
	"wallet-faucet/internal/core/ports"
	"wallet-faucet/pkg/apperror"
	"wallet-faucet/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles outgoing payments to lightning addresses.
type PaymentHandler struct {
	paymentSvc ports.PaymentService
	lookupSvc  ports.WalletLookupService
	ownDomain  string
}

// NewPaymentHandler creates a new PaymentHandler. Addresses on ownDomain
// are faucet wallets and are credited by transfer instead of paid over
// lightning.
func NewPaymentHandler(paymentSvc ports.PaymentService, lookupSvc ports.WalletLookupService, ownDomain string) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc, lookupSvc: lookupSvc, ownDomain: ownDomain}
}

// Pay handles POST /api/v1/payments.
func (h *PaymentHandler) Pay(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if dto.IsAddressRuleViolation(err) {
			response.Error(c, apperror.ErrAddressMalformed(strings.TrimSpace(req.Address)))
			return
		}
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)
	c.Set(middleware.CtxAuditResourceID, req.Address)

	if h.isOwnAddress(req.Address) {
		c.Set(middleware.CtxAuditAction, domain.AuditActionTopUp)
		result, err := h.lookupSvc.TopUp(c.Request.Context(), req.Address, req.AmountSat)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, toTopUpResponse(result))
		return
	}

	outcome, err := h.paymentSvc.PayAddress(c.Request.Context(), req.Address, req.AmountSat)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toPaymentResponse(outcome))
}

func (h *PaymentHandler) isOwnAddress(address string) bool {
	return h.lookupSvc != nil && h.ownDomain != "" &&
		strings.EqualFold(domain.AddressDomain(address), h.ownDomain)
}

func toPaymentResponse(o *domain.PaymentOutcome) dto.PaymentResponse {
	return dto.PaymentResponse{
		Amount:          o.Amount,
		Description:     o.Description,
		Destination:     o.Destination,
		Fee:             o.Fee,
		PaymentHash:     o.PaymentHash,
		PaymentPreimage: o.PaymentPreimage,
		PaymentRequest:  o.PaymentRequest,
	}
}
