package nowpayments

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	// tokenFallbackTTL is used when the token carries no readable exp claim.
	// The provider's documented token lifetime is five minutes.
	tokenFallbackTTL = 4 * time.Minute
	// tokenExpiryMargin refreshes proactively, before the provider would
	// start rejecting the token.
	tokenExpiryMargin = 30 * time.Second
)

type authRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

// bearerToken returns a valid bearer token, refreshing when the cached one
// is past its window. The cache is a single process-wide slot; the lock is
// held across the refresh so concurrent callers wait on one /auth call
// instead of issuing their own.
func (c *Client) bearerToken(ctx context.Context) (string, error) {
	if c.cfg.Email == "" || c.cfg.Password == "" {
		return "", fmt.Errorf("email/password missing: %w", ErrNotConfigured)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExp) {
		return c.token, nil
	}

	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/auth", authNone, authRequest{
		Email:    c.cfg.Email,
		Password: c.cfg.Password,
	}, &out); err != nil {
		return "", fmt.Errorf("auth exchange failed: %w", err)
	}
	if out.Token == "" {
		return "", fmt.Errorf("auth exchange returned empty token")
	}

	c.token = out.Token
	c.tokenExp = tokenExpiry(out.Token, time.Now())
	c.log.Infow("nowpayments_token_refreshed", "expires_at", c.tokenExp)
	return c.token, nil
}

// tokenExpiry reads the JWT exp claim without verifying the signature; we
// only need the lifetime, the provider verifies authenticity itself.
func tokenExpiry(token string, now time.Time) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			t := time.Unix(int64(exp), 0).Add(-tokenExpiryMargin)
			if t.After(now) {
				return t
			}
		}
	}
	return now.Add(tokenFallbackTTL)
}
