package handler

import (
	"errors"
	"io"

	"wallet-faucet/internal/adapter/http/dto"
	"wallet-faucet/internal/adapter/http/middleware"
	"wallet-faucet/internal/core/domain"
	"wallet-faucet/internal/core/ports"
	"wallet-faucet/pkg/apperror"
	"wallet-faucet/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet provisioning and top-up endpoints.
type WalletHandler struct {
	provisioningSvc ports.ProvisioningService
	lookupSvc       ports.WalletLookupService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(provisioningSvc ports.ProvisioningService, lookupSvc ports.WalletLookupService) *WalletHandler {
	return &WalletHandler{
		provisioningSvc: provisioningSvc,
		lookupSvc:       lookupSvc,
	}
}

// Provision handles POST /api/v1/wallets.
func (h *WalletHandler) Provision(c *gin.Context) {
	var req dto.ProvisionWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	var balance int64
	if req.BalanceSat != nil {
		balance = *req.BalanceSat
	}

	result, err := h.provisioningSvc.Provision(c.Request.Context(), balance)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Set(middleware.CtxAuditResourceID, result.LightningAddress)

	response.Created(c, toWalletResponse(result))
}

// TopUp handles POST /api/v1/wallets/topup.
func (h *WalletHandler) TopUp(c *gin.Context) {
	var req dto.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)
	c.Set(middleware.CtxAuditResourceID, req.Address)

	result, err := h.lookupSvc.TopUp(c.Request.Context(), req.Address, req.AmountSat)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toTopUpResponse(result))
}

func toWalletResponse(r *domain.ProvisionResult) dto.WalletResponse {
	return dto.WalletResponse{
		PairingURI:       r.PairingURI,
		LightningAddress: r.LightningAddress,
		WalletID:         r.WalletID.String(),
		WalletName:       r.WalletName,
	}
}

func toTopUpResponse(r *domain.TopUpConfirmation) dto.TopUpResponse {
	return dto.TopUpResponse{
		WalletID:   r.WalletID.String(),
		WalletName: r.WalletName,
		Address:    r.Address,
		AmountSat:  r.AmountSat,
	}
}
