package nowpayments

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fatflowers/paylink/pkg/config"
)

func signIPN(secret string, body []byte) string {
	sorted, _ := sortedJSON(body)
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(sorted)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyIPN(t *testing.T) {
	c := New(&config.Config{NOWPayments: config.NOWPaymentsConfig{IPNSecret: "s3cret"}}, zap.NewNop().Sugar())

	// key order in the raw body must not matter
	body := []byte(`{"payment_status":"finished","order_id":"Acme|Widget|25"}`)
	reordered := []byte(`{"order_id":"Acme|Widget|25","payment_status":"finished"}`)
	sig := signIPN("s3cret", body)

	require.NoError(t, c.VerifyIPN(sig, body))
	require.NoError(t, c.VerifyIPN(sig, reordered))

	require.Error(t, c.VerifyIPN("", body))
	require.Error(t, c.VerifyIPN(sig, []byte(`{"payment_status":"waiting"}`)))
	require.Error(t, c.VerifyIPN(sig, []byte(`not json`)))
}

func TestVerifyIPN_NoSecretConfigured(t *testing.T) {
	c := New(&config.Config{}, zap.NewNop().Sugar())
	require.NoError(t, c.VerifyIPN("", []byte(`{"payment_status":"finished"}`)))
}
