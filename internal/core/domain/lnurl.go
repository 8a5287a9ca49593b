package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TagPayRequest marks an LNURL-pay discovery document.
const TagPayRequest = "payRequest"

// LNURLStatusError is the status value of an LNURL error document.
const LNURLStatusError = "ERROR"

// Millisats is an LNURL amount. Some services send bounds as strings.
// null leaves the value unchanged.
type Millisats int64

func (m *Millisats) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(strings.TrimSpace(s))
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("millisats %q: %w", data, err)
	}
	*m = Millisats(n)
	return nil
}

// Sat truncates to whole satoshis.
func (m Millisats) Sat() int64 { return int64(m) / 1000 }

// SatToMillisats converts a satoshi amount for LNURL callbacks.
func SatToMillisats(sat int64) int64 { return sat * 1000 }

// PayRequest is the LNURL-pay discovery document (LUD-06).
type PayRequest struct {
	Tag         string    `json:"tag"`
	Callback    string    `json:"callback"`
	MinSendable Millisats `json:"minSendable"`
	MaxSendable Millisats `json:"maxSendable"`
	Metadata    string    `json:"metadata,omitempty"`
	Status      string    `json:"status,omitempty"`
	Reason      string    `json:"reason,omitempty"`
}

// InvoiceResponse is the LNURL-pay callback response.
type InvoiceResponse struct {
	PR     string `json:"pr"`
	Status string `json:"status,omitempty"`
	Reason string `json:"reason,omitempty"`
}

var lightningAddressRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsLightningAddress reports whether s has the email-like localpart@domain.tld shape.
func IsLightningAddress(s string) bool {
	return lightningAddressRe.MatchString(s)
}

// SplitAddress splits "localpart@domain". ok is false unless both parts are
// non-empty and there is exactly one '@'.
func SplitAddress(address string) (localpart, domain string, ok bool) {
	localpart, domain, found := strings.Cut(address, "@")
	if !found || localpart == "" || domain == "" || strings.Contains(domain, "@") {
		return "", "", false
	}
	return localpart, domain, true
}

// Localpart returns the text before the first '@', or the whole string.
func Localpart(address string) string {
	localpart, _, _ := strings.Cut(address, "@")
	return localpart
}

// AddressDomain returns the text after the first '@', or "".
func AddressDomain(address string) string {
	_, domain, _ := strings.Cut(address, "@")
	return domain
}

// FormatAddress joins a localpart and domain.
func FormatAddress(localpart, domain string) string {
	return localpart + "@" + domain
}
