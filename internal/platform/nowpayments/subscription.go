package nowpayments

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

type planRequest struct {
	Title       string  `json:"title"`
	IntervalDay int     `json:"interval_day"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
}

// Plan is the provider's recurring billing template.
type Plan struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	IntervalDay int     `json:"interval_day"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	CreatedAt   string  `json:"created_at"`
}

type planResponse struct {
	Result Plan `json:"result"`
}

// CreatePlan registers a recurring billing template and returns its id.
func (c *Client) CreatePlan(ctx context.Context, title string, amountUSD float64, intervalDays int) (string, error) {
	if intervalDays <= 0 {
		intervalDays = c.IntervalDays()
	}
	var out planResponse
	err := c.do(ctx, http.MethodPost, "/subscriptions/plans", authAPIKey, planRequest{
		Title:       title,
		IntervalDay: intervalDays,
		Amount:      amountUSD,
		Currency:    "usd",
	}, &out)
	if err != nil {
		return "", err
	}
	return out.Result.ID, nil
}

func (c *Client) GetPlan(ctx context.Context, id string) (*Plan, error) {
	var out planResponse
	err := c.do(ctx, http.MethodGet, "/subscriptions/plans/"+url.PathEscape(id), authAPIKey, nil, &out)
	if err != nil {
		if pe, ok := asProviderError(err); ok && pe.Status == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &out.Result, nil
}

type planListResponse struct {
	Result []Plan `json:"result"`
}

func (c *Client) ListPlans(ctx context.Context) ([]Plan, error) {
	var out planListResponse
	if err := c.do(ctx, http.MethodGet, "/subscriptions/plans", authAPIKey, nil, &out); err != nil {
		return nil, err
	}
	return out.Result, nil
}

type subscriptionRequest struct {
	SubscriptionPlanID string `json:"subscription_plan_id"`
	Email              string `json:"email"`
	OrderID            string `json:"order_id,omitempty"`
}

type subscriptionResponse struct {
	ID string `json:"id"`
}

// CreateSubscription enrolls a customer into an existing plan. The provider
// answering 404 means the plan id is unknown and maps to ErrNotFound.
// Subscription creation is the one endpoint behind bearer auth when
// email/password credentials are configured.
func (c *Client) CreateSubscription(ctx context.Context, planID, email, orderID string) (string, error) {
	mode := authAPIKey
	if c.cfg.Email != "" && c.cfg.Password != "" {
		mode = authBearer
	}
	var out subscriptionResponse
	err := c.do(ctx, http.MethodPost, "/subscriptions", mode, subscriptionRequest{
		SubscriptionPlanID: planID,
		Email:              email,
		OrderID:            orderID,
	}, &out)
	if err != nil {
		if pe, ok := asProviderError(err); ok && pe.Status == http.StatusNotFound {
			return "", ErrNotFound
		}
		return "", err
	}
	return out.ID, nil
}

func asProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
