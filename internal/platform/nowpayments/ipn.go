package nowpayments

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// VerifyIPN checks the x-nowpayments-sig header: an HMAC-SHA512 of the JSON
// body re-serialized with sorted keys. No-op when no IPN secret is
// configured, matching deployments that never set one up.
func (c *Client) VerifyIPN(sig string, body []byte) error {
	if c.cfg.IPNSecret == "" {
		return nil
	}
	if sig == "" {
		return errors.New("missing x-nowpayments-sig header")
	}

	sorted, err := sortedJSON(body)
	if err != nil {
		return fmt.Errorf("ipn body is not a JSON object: %w", err)
	}

	mac := hmac.New(sha512.New, []byte(c.cfg.IPNSecret))
	mac.Write(sorted)
	want := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(want), []byte(strings.ToLower(sig))) {
		return errors.New("ipn signature mismatch")
	}
	return nil
}

// sortedJSON re-serializes a JSON object with lexicographically sorted keys,
// which is the canonical form the provider signs. encoding/json already
// sorts map keys on marshal.
func sortedJSON(body []byte) ([]byte, error) {
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, err
	}
	return json.Marshal(m)
}
