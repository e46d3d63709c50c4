package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fatflowers/paylink/internal/platform/automation"
	"github.com/fatflowers/paylink/internal/platform/nowpayments"
	"github.com/fatflowers/paylink/internal/platform/store"
	"github.com/fatflowers/paylink/internal/platform/store/memory"
	"github.com/fatflowers/paylink/pkg/config"
	"github.com/fatflowers/paylink/pkg/types"
)

func newTestService(t *testing.T, st store.Store, providerHandler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(providerHandler)
	t.Cleanup(srv.Close)
	cfg := &config.Config{NOWPayments: config.NOWPaymentsConfig{
		BaseURL:      srv.URL,
		APIKey:       "key_test",
		IntervalDays: 30,
	}}
	log := zap.NewNop().Sugar()
	return NewService(cfg, log, st, nowpayments.New(cfg, log), automation.New(cfg, log))
}

func seedProduct(t *testing.T, st store.Store, kind types.Kind, price float64) types.ProductRef {
	t.Helper()
	p, err := st.Create(context.Background(), kind, types.ProductFields{
		CompanyName: "Acme", ProductName: "Widget", Price: price,
	})
	require.NoError(t, err)
	return types.ProductRef{Kind: kind, ID: p.ID}
}

func TestSubmit_PriceIsAuthoritativeFromStore(t *testing.T) {
	st := memory.New()
	ref := seedProduct(t, st, types.KindOneTime, 25)

	var gotBody map[string]any
	s := newTestService(t, st, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/invoice", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(nowpayments.Invoice{ID: "1", InvoiceURL: "https://nowpayments.io/payment/?iid=1"})
	})

	// The submit request has no price field at all; the invoice amount must
	// come from the stored record.
	res, err := s.Submit(context.Background(), SubmitRequest{Ref: ref, Name: "Jane", Email: "jane@x.com"})
	require.NoError(t, err)
	require.Equal(t, 25.0, gotBody["price_amount"])
	require.Equal(t, "usd", gotBody["price_currency"])
	require.Equal(t, "Acme|Widget|25", gotBody["order_id"])
	require.Equal(t, "https://nowpayments.io/payment/?iid=1", res.InvoiceURL)
}

func TestSubmit_UnknownProduct(t *testing.T) {
	s := newTestService(t, memory.New(), func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("provider must not be called for unknown products")
	})
	_, err := s.Submit(context.Background(), SubmitRequest{Ref: types.ProductRef{Kind: types.KindOneTime, ID: "missing"}})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSubmit_ZeroPriceRejected(t *testing.T) {
	st := memory.New()
	ref := seedProduct(t, st, types.KindOneTime, 0)
	s := newTestService(t, st, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("provider must not be called without a resolved price")
	})

	_, err := s.Submit(context.Background(), SubmitRequest{Ref: ref, Name: "Jane"})
	require.ErrorIs(t, err, ErrPriceUnresolved)
}

func TestSubmit_Subscription_PlanFailureAbortsEnrollment(t *testing.T) {
	st := memory.New()
	ref := seedProduct(t, st, types.KindSubscription, 9.99)

	var subscriptionCalls int64
	s := newTestService(t, st, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/subscriptions/plans":
			w.WriteHeader(http.StatusInternalServerError)
		case "/subscriptions":
			atomic.AddInt64(&subscriptionCalls, 1)
		}
	})

	_, err := s.Submit(context.Background(), SubmitRequest{Ref: ref, Email: "jane@x.com"})
	require.Error(t, err)
	require.Equal(t, int64(0), atomic.LoadInt64(&subscriptionCalls))
}

func TestSubmit_Subscription_EnrollmentFailureSurfaces(t *testing.T) {
	st := memory.New()
	ref := seedProduct(t, st, types.KindSubscription, 9.99)

	s := newTestService(t, st, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/subscriptions/plans":
			json.NewEncoder(w).Encode(map[string]any{"result": map[string]any{"id": "plan_1"}})
		case "/subscriptions":
			w.WriteHeader(http.StatusBadGateway)
		}
	})

	// The already-created plan is left behind at the provider; the failure
	// must still reach the caller instead of reporting partial success.
	_, err := s.Submit(context.Background(), SubmitRequest{Ref: ref, Email: "jane@x.com"})
	require.Error(t, err)
}

func TestSubmit_AutomationDelegation(t *testing.T) {
	var gotBody map[string]any
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"invoice_url":"https://nowpayments.io/payment/?iid=77"}`))
	}))
	t.Cleanup(webhook.Close)

	cfg := &config.Config{
		Automation:  config.AutomationConfig{WebhookURL: webhook.URL},
		NOWPayments: config.NOWPaymentsConfig{BaseURL: "http://127.0.0.1:0", APIKey: "key_test"},
	}
	log := zap.NewNop().Sugar()
	s := NewService(cfg, log, memory.New(), nowpayments.New(cfg, log), automation.New(cfg, log))

	res, err := s.Submit(context.Background(), SubmitRequest{
		Ref:   types.ProductRef{Kind: types.KindSubscription, ID: "recX"},
		Name:  "Jane",
		Email: "jane@x.com",
	})
	require.NoError(t, err)
	require.JSONEq(t, `{"invoice_url":"https://nowpayments.io/payment/?iid=77"}`, string(res.Raw))
	require.Equal(t, "recX", gotBody["productId"])
	require.Equal(t, "Jane", gotBody["customerName"])
	require.Equal(t, "Subscription", gotBody["paymentType"])
	require.NotEmpty(t, gotBody["timestamp"])
}

func TestCreateDirectSubscription(t *testing.T) {
	var planBody, subBody map[string]any
	s := newTestService(t, memory.New(), func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/subscriptions/plans":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&planBody))
			json.NewEncoder(w).Encode(map[string]any{"result": map[string]any{"id": "plan_1"}})
		case "/subscriptions":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&subBody))
			json.NewEncoder(w).Encode(map[string]any{"id": "sub_1"})
		}
	})

	id, err := s.CreateDirectSubscription(context.Background(), DirectSubscriptionRequest{
		CompanyName: "Acme", ProductName: "Gold", Price: 9.99, Email: "jane@x.com",
	})
	require.NoError(t, err)
	require.Equal(t, "sub_1", id)
	require.Equal(t, "Gold", planBody["title"])
	require.Equal(t, 9.99, planBody["amount"])
	require.Equal(t, "plan_1", subBody["subscription_plan_id"])
	require.Equal(t, "jane@x.com", subBody["email"])
	require.Equal(t, "Acme|Gold|9.99", subBody["order_id"])
}
