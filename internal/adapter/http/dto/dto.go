package dto

// ProvisionWalletRequest is the request body for wallet provisioning.
// An empty body provisions an unfunded wallet.
type ProvisionWalletRequest struct {
	BalanceSat *int64 `json:"balance_sat,omitempty" binding:"omitempty,min=0"`
}

// PaymentRequest is the request body for paying a lightning address.
type PaymentRequest struct {
	Address   string `json:"address" binding:"required,ln_address" sanitize:"trim"`
	AmountSat int64  `json:"amount_sat" binding:"required,gt=0"`
}

// TopUpRequest is the request body for crediting a faucet wallet.
type TopUpRequest struct {
	Address   string `json:"address" binding:"required,max=320" sanitize:"trim"`
	AmountSat int64  `json:"amount_sat" binding:"required,gt=0"`
}

// WalletResponse is returned once per provisioned wallet; the pairing URI
// is not retrievable afterwards.
type WalletResponse struct {
	PairingURI       string `json:"pairing_uri"`
	LightningAddress string `json:"lightning_address"`
	WalletID         string `json:"wallet_id"`
	WalletName       string `json:"wallet_name"`
}

// TopUpResponse confirms a credit into a faucet wallet.
type TopUpResponse struct {
	WalletID   string `json:"wallet_id"`
	WalletName string `json:"wallet_name"`
	Address    string `json:"address"`
	AmountSat  int64  `json:"amount_sat"`
}

// PaymentResponse is the settlement result of a lightning address payment.
type PaymentResponse struct {
	Amount          int64  `json:"amount"`
	Description     string `json:"description"`
	Destination     string `json:"destination"`
	Fee             int64  `json:"fee"`
	PaymentHash     string `json:"payment_hash"`
	PaymentPreimage string `json:"payment_preimage"`
	PaymentRequest  string `json:"payment_request"`
}
