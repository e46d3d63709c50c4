package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fatflowers/paylink/internal/platform/store"
	"github.com/fatflowers/paylink/internal/platform/store/memory"
	"github.com/fatflowers/paylink/pkg/config"
	"github.com/fatflowers/paylink/pkg/types"
)

func newTestService(st store.Store) *Service {
	cfg := &config.Config{Checkout: config.CheckoutConfig{PublicBaseURL: "https://pay.example"}}
	return NewService(cfg, zap.NewNop().Sugar(), st)
}

func TestCreateLink_BackfillsCheckoutURL(t *testing.T) {
	st := memory.New()
	s := newTestService(st)

	link, err := s.CreateLink(context.Background(), types.KindOneTime, CreateLinkRequest{
		CompanyName: "Acme", ProductName: "Widget", Price: 25,
	})
	require.NoError(t, err)
	require.False(t, link.Direct)
	require.Contains(t, link.URL, "https://pay.example/checkout/")

	items, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, link.URL, items[0].URL)
}

func TestCreateLink_SubscriptionURLCarriesDiscriminator(t *testing.T) {
	s := newTestService(memory.New())

	link, err := s.CreateLink(context.Background(), types.KindSubscription, CreateLinkRequest{
		CompanyName: "Acme", ProductName: "Gold", Price: 9,
	})
	require.NoError(t, err)
	require.Contains(t, link.URL, "?type=sub")
}

func TestCreateLink_OriginFallback(t *testing.T) {
	s := NewService(&config.Config{}, zap.NewNop().Sugar(), memory.New())

	link, err := s.CreateLink(context.Background(), types.KindOneTime, CreateLinkRequest{
		CompanyName: "Acme", ProductName: "Widget", Price: 25, Origin: "https://merchant.example",
	})
	require.NoError(t, err)
	require.Contains(t, link.URL, "https://merchant.example/checkout/")
}

func TestList_MergesKindsNewestFirst(t *testing.T) {
	st := memory.New()
	s := newTestService(st)
	ctx := context.Background()

	older, err := st.Create(ctx, types.KindOneTime, types.ProductFields{CompanyName: "Acme", ProductName: "Old", Price: 1})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	newer, err := st.Create(ctx, types.KindSubscription, types.ProductFields{CompanyName: "Acme", ProductName: "New", Price: 2})
	require.NoError(t, err)

	items, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, newer.ID, items[0].ID)
	require.Equal(t, "subscription", items[0].Type)
	require.Equal(t, older.ID, items[1].ID)
	require.Equal(t, "payment_link", items[1].Type)
}

func TestDelete_PassesThroughNotFound(t *testing.T) {
	s := newTestService(memory.New())
	err := s.Delete(context.Background(), types.ProductRef{Kind: types.KindOneTime, ID: "missing"})
	require.ErrorIs(t, err, store.ErrNotFound)
}
