package domain

// PaymentOutcome is the hub's settlement result for a paid invoice,
// returned to callers verbatim.
type PaymentOutcome struct {
	Amount          int64  `json:"amount"`
	Description     string `json:"description"`
	Destination     string `json:"destination"`
	Fee             int64  `json:"fee"`
	PaymentHash     string `json:"payment_hash"`
	PaymentPreimage string `json:"payment_preimage"`
	PaymentRequest  string `json:"payment_request"`
}

// Settled reports whether the hub returned proof of payment.
func (o *PaymentOutcome) Settled() bool {
	return o != nil && o.PaymentPreimage != ""
}
