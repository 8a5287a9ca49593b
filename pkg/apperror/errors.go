package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string      `json:"error_code"`
	Message    string      `json:"message"`
	HTTPStatus int         `json:"-"`
	Details    interface{} `json:"details,omitempty"`
	Err        error       `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// HasCode reports whether err (or anything it wraps) is an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Error codes.
const (
	CodeConfigMissing            = "CFG_001"
	CodeHubUnavailable           = "HUB_001"
	CodeHubEndpointMissing       = "HUB_002"
	CodeHubRejected              = "HUB_003"
	CodeHubResponseInvalid       = "HUB_004"
	CodeAddressMalformed         = "ADDR_001"
	CodeRecipientUnreachable     = "LNURL_001"
	CodeRecipientUnsupported     = "LNURL_002"
	CodeRecipientResponseInvalid = "LNURL_003"
	CodeAmountOutOfRange         = "LNURL_004"
	CodeWalletNotFound           = "WALLET_001"
	CodeInvalidRequest           = "REQ_001"
	CodeRateLimitExceeded        = "RATE_001"
	CodeInternal                 = "SYS_001"
)

// ---- Configuration (CFG) ----

func ErrConfigMissing(key string) *AppError {
	return New(CodeConfigMissing, fmt.Sprintf("required configuration %q is not set", key), http.StatusInternalServerError)
}

// ---- Hub (HUB) ----

func ErrHubUnavailable(err error) *AppError {
	return Wrap(CodeHubUnavailable, "Hub is unavailable", http.StatusServiceUnavailable, err)
}

// ErrHubEndpointMissing signals a 404 from the hub, which almost always
// means the configured hub URL is wrong.
func ErrHubEndpointMissing(path string) *AppError {
	return New(CodeHubEndpointMissing,
		fmt.Sprintf("Hub endpoint %s not found, check the configured hub URL", path),
		http.StatusBadGateway)
}

func ErrHubRejected(status int, reason string) *AppError {
	msg := fmt.Sprintf("Hub rejected the request (status %d)", status)
	if reason != "" {
		msg += ": " + reason
	}
	return New(CodeHubRejected, msg, http.StatusBadGateway)
}

func ErrHubResponseInvalid(reason string) *AppError {
	return New(CodeHubResponseInvalid, "Hub returned an invalid response: "+reason, http.StatusBadGateway)
}

// ---- Lightning Address / LNURL (ADDR, LNURL) ----

func ErrAddressMalformed(address string) *AppError {
	return New(CodeAddressMalformed, fmt.Sprintf("%q is not a valid lightning address", address), http.StatusBadRequest)
}

func ErrRecipientUnreachable(err error) *AppError {
	return Wrap(CodeRecipientUnreachable, "Recipient LNURL service is unreachable", http.StatusBadGateway, err)
}

func ErrRecipientUnsupported(reason string) *AppError {
	return New(CodeRecipientUnsupported, "Recipient does not support LNURL-pay: "+reason, http.StatusBadGateway)
}

func ErrRecipientResponseInvalid(reason string) *AppError {
	return New(CodeRecipientResponseInvalid, "Recipient returned an invalid response: "+reason, http.StatusBadGateway)
}

// AmountBounds is attached to AmountOutOfRange errors.
type AmountBounds struct {
	MinSat int64 `json:"min_sat"`
	MaxSat int64 `json:"max_sat"`
}

func ErrAmountOutOfRange(amountSat, minSat, maxSat int64) *AppError {
	e := New(CodeAmountOutOfRange,
		fmt.Sprintf("Amount %d sat is outside the recipient range [%d, %d] sat", amountSat, minSat, maxSat),
		http.StatusBadRequest)
	e.Details = AmountBounds{MinSat: minSat, MaxSat: maxSat}
	return e
}

// ---- Wallets (WALLET) ----

func ErrWalletNotFound(name string) *AppError {
	return New(CodeWalletNotFound, fmt.Sprintf("No wallet named %q", name), http.StatusNotFound)
}

// ---- Requests (REQ) ----

func ErrInvalidAmount() *AppError {
	return New(CodeInvalidRequest, "Amount must be a positive number of satoshis", http.StatusBadRequest)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New(CodeInvalidRequest, message, http.StatusBadRequest)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimitExceeded, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}
