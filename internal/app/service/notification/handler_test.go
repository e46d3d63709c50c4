package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fatflowers/paylink/internal/platform/nowpayments"
	"github.com/fatflowers/paylink/pkg/config"
)

func newTestHandler(t *testing.T, ipnSecret string) (*Handler, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core).Sugar()
	np := nowpayments.New(&config.Config{NOWPayments: config.NOWPaymentsConfig{IPNSecret: ipnSecret}}, log)
	return NewHandler(log, np), logs
}

func TestHandle_SuccessStatusLogsDecodedTriple(t *testing.T) {
	h, logs := newTestHandler(t, "")

	h.Handle(context.Background(), "", []byte(`{"payment_status":"finished","order_id":"Acme|Widget|25"}`))

	entries := logs.FilterMessage("payment_received").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "Acme", fields["company"])
	require.Equal(t, "Widget", fields["product"])
	require.Equal(t, 25.0, fields["price_usd"])
}

func TestHandle_ConfirmedCountsAsSuccess(t *testing.T) {
	h, logs := newTestHandler(t, "")
	h.Handle(context.Background(), "", []byte(`{"payment_status":"confirmed","order_id":"Acme|Widget|25"}`))
	require.Len(t, logs.FilterMessage("payment_received").All(), 1)
}

func TestHandle_ToleratesMalformedPayloads(t *testing.T) {
	h, logs := newTestHandler(t, "")

	// none of these may panic or escalate
	h.Handle(context.Background(), "", []byte(`not json`))
	h.Handle(context.Background(), "", []byte(`{}`))
	h.Handle(context.Background(), "", []byte(`{"payment_status":"finished"}`))
	h.Handle(context.Background(), "", []byte(`{"payment_status":"finished","order_id":"just-a-record-id"}`))
	h.Handle(context.Background(), "", []byte(`{"payment_status":"finished","order_id":"a|b"}`))

	// undecodable references are still observed, raw
	raw := logs.FilterMessage("payment_received").All()
	require.NotEmpty(t, raw)
}

func TestHandle_NonSuccessStatusIgnored(t *testing.T) {
	h, logs := newTestHandler(t, "")
	h.Handle(context.Background(), "", []byte(`{"payment_status":"waiting","order_id":"Acme|Widget|25"}`))
	require.Empty(t, logs.FilterMessage("payment_received").All())
	require.Len(t, logs.FilterMessage("ipn_ignored").All(), 1)
}

func TestHandle_BadSignatureStillSwallowed(t *testing.T) {
	h, logs := newTestHandler(t, "s3cret")
	h.Handle(context.Background(), "deadbeef", []byte(`{"payment_status":"finished","order_id":"Acme|Widget|25"}`))
	require.Empty(t, logs.FilterMessage("payment_received").All())
	require.Len(t, logs.FilterMessage("ipn_signature_rejected").All(), 1)
}
