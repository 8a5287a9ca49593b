package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AppID is the hub-assigned identifier of a wallet app. The hub emits it as
// a JSON number; strings are accepted too so the id stays opaque.
type AppID string

func (id AppID) String() string { return string(id) }

// MarshalJSON writes numeric ids as JSON numbers and anything else as a string.
func (id AppID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id *AppID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = AppID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("app id: %w", err)
	}
	*id = AppID(n.String())
	return nil
}

// WalletState tracks how far provisioning got for a wallet.
type WalletState string

const (
	WalletStateCreated         WalletState = "CREATED"
	WalletStateFunded          WalletState = "FUNDED"
	WalletStateAddressAssigned WalletState = "ADDRESS_ASSIGNED"
)

// Wallet is one isolated sub-account ("app") on the hub.
// Balance is never tracked locally; the hub is authoritative.
type Wallet struct {
	ID         AppID       `json:"id"`
	Name       string      `json:"name"`
	PairingURI string      `json:"-"` // issued once by the hub, never logged
	Scopes     []string    `json:"scopes"`
	State      WalletState `json:"state"`
}

// Scope names granted to every provisioned wallet.
const (
	ScopeGetInfo          = "get_info"
	ScopePayInvoice       = "pay_invoice"
	ScopeGetBalance       = "get_balance"
	ScopeMakeInvoice      = "make_invoice"
	ScopeLookupInvoice    = "lookup_invoice"
	ScopeListTransactions = "list_transactions"
	ScopeNotifications    = "notifications"
)

// DefaultScopes returns a fresh copy of the fixed scope set.
func DefaultScopes() []string {
	return []string{
		ScopeGetInfo,
		ScopePayInvoice,
		ScopeGetBalance,
		ScopeMakeInvoice,
		ScopeLookupInvoice,
		ScopeListTransactions,
		ScopeNotifications,
	}
}

// NewWalletName builds "{prefix}-{unix seconds}-{suffix}".
func NewWalletName(prefix string, now time.Time, suffix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, now.Unix(), suffix)
}

// RandomSuffix returns 8 lowercase hex characters.
func RandomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// AppSummary is one entry of the hub's app listing.
type AppSummary struct {
	ID   AppID  `json:"id"`
	Name string `json:"name"`
}

// WalletBinding maps an issued lightning address to its hub app.
type WalletBinding struct {
	Address    string    `json:"address"`
	AppID      AppID     `json:"app_id"`
	WalletName string    `json:"wallet_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// ProvisionResult is returned to the caller of a successful provisioning.
// PairingURI already carries the lud16 parameter.
type ProvisionResult struct {
	PairingURI       string `json:"pairing_uri"`
	LightningAddress string `json:"lightning_address"`
	WalletID         AppID  `json:"wallet_id"`
	WalletName       string `json:"wallet_name"`
}

// TopUpConfirmation acknowledges a credit into an existing faucet wallet.
type TopUpConfirmation struct {
	WalletID   AppID  `json:"wallet_id"`
	WalletName string `json:"wallet_name"`
	Address    string `json:"address"`
	AmountSat  int64  `json:"amount_sat"`
}
