package nowpayments

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fatflowers/paylink/pkg/config"
)

// jwtWithExp builds an unsigned-but-well-formed JWT carrying only exp.
func jwtWithExp(t *testing.T, exp time.Time) string {
	t.Helper()
	enc := func(v any) string {
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		return base64.RawURLEncoding.EncodeToString(raw)
	}
	header := enc(map[string]string{"alg": "HS256", "typ": "JWT"})
	claims := enc(map[string]int64{"exp": exp.Unix()})
	return header + "." + claims + ".sig"
}

func TestBearerToken_ConcurrentColdCache_SingleAuthCall(t *testing.T) {
	var authCalls int64
	var subCalls int64
	c := newTestClient(t, config.NOWPaymentsConfig{APIKey: "key_test", Email: "m@x.com", Password: "pw"},
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/auth":
				atomic.AddInt64(&authCalls, 1)
				json.NewEncoder(w).Encode(authResponse{Token: jwtWithExp(t, time.Now().Add(5*time.Minute))})
			case "/subscriptions":
				atomic.AddInt64(&subCalls, 1)
				require.NotEmpty(t, r.Header.Get("Authorization"))
				json.NewEncoder(w).Encode(subscriptionResponse{ID: fmt.Sprintf("sub_%d", atomic.LoadInt64(&subCalls))})
			default:
				t.Errorf("unexpected path %s", r.URL.Path)
			}
		}))

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.CreateSubscription(context.Background(), "plan_1", "jane@x.com", "")
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	require.Equal(t, int64(1), atomic.LoadInt64(&authCalls))
	require.Equal(t, int64(2), atomic.LoadInt64(&subCalls))
}

func TestBearerToken_RefreshesWhenExpired(t *testing.T) {
	var authCalls int64
	c := newTestClient(t, config.NOWPaymentsConfig{APIKey: "key_test", Email: "m@x.com", Password: "pw"},
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/auth":
				atomic.AddInt64(&authCalls, 1)
				json.NewEncoder(w).Encode(authResponse{Token: jwtWithExp(t, time.Now().Add(time.Hour))})
			case "/subscriptions":
				json.NewEncoder(w).Encode(subscriptionResponse{ID: "sub_1"})
			}
		}))

	_, err := c.CreateSubscription(context.Background(), "plan_1", "jane@x.com", "")
	require.NoError(t, err)
	require.Equal(t, int64(1), atomic.LoadInt64(&authCalls))

	// Force the cached token past its window; next call must refetch.
	c.mu.Lock()
	c.tokenExp = time.Now().Add(-time.Second)
	c.mu.Unlock()

	_, err = c.CreateSubscription(context.Background(), "plan_1", "jane@x.com", "")
	require.NoError(t, err)
	require.Equal(t, int64(2), atomic.LoadInt64(&authCalls))
}

func TestTokenExpiry(t *testing.T) {
	now := time.Now()

	withClaim := tokenExpiry(jwtWithExp(t, now.Add(5*time.Minute)), now)
	require.WithinDuration(t, now.Add(5*time.Minute).Add(-tokenExpiryMargin), withClaim, time.Second)

	// Garbage tokens fall back to the fixed window.
	garbage := tokenExpiry("not-a-jwt", now)
	require.WithinDuration(t, now.Add(tokenFallbackTTL), garbage, time.Second)

	// An already-expired claim must not yield a window in the past.
	stale := tokenExpiry(jwtWithExp(t, now.Add(-time.Minute)), now)
	require.WithinDuration(t, now.Add(tokenFallbackTTL), stale, time.Second)
}

func TestBearerToken_MissingCredentials(t *testing.T) {
	c := newTestClient(t, config.NOWPaymentsConfig{APIKey: "key_test"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(subscriptionResponse{ID: "sub_1"})
	}))
	// Without email/password the client falls back to API-key auth.
	_, err := c.CreateSubscription(context.Background(), "plan_1", "jane@x.com", "")
	require.NoError(t, err)

	_, err = c.bearerToken(context.Background())
	require.ErrorIs(t, err, ErrNotConfigured)
}
