package metrics

import (
	"errors"

	"wallet-faucet/pkg/apperror"
)

// Status classifies err into a label value.
func Status(err error) string {
	if err == nil {
		return "ok"
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "error"
}
