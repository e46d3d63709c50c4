package nowpayments

import (
	"context"
	"net/http"
	"net/url"
)

// InvoiceRequest creates one hosted payment page. PriceCurrency defaults to
// usd; the IPN callback is filled from config when unset.
type InvoiceRequest struct {
	PriceAmount      float64 `json:"price_amount"`
	PriceCurrency    string  `json:"price_currency"`
	OrderID          string  `json:"order_id,omitempty"`
	OrderDescription string  `json:"order_description,omitempty"`
	IPNCallbackURL   string  `json:"ipn_callback_url,omitempty"`
}

// Invoice is the provider's invoice record. Amounts come back as strings.
type Invoice struct {
	ID               string `json:"id"`
	OrderID          string `json:"order_id"`
	OrderDescription string `json:"order_description"`
	PriceAmount      string `json:"price_amount"`
	PriceCurrency    string `json:"price_currency"`
	InvoiceURL       string `json:"invoice_url"`
	CreatedAt        string `json:"created_at"`
}

func (c *Client) CreateInvoice(ctx context.Context, inv InvoiceRequest) (*Invoice, error) {
	if inv.PriceCurrency == "" {
		inv.PriceCurrency = "usd"
	}
	if inv.IPNCallbackURL == "" {
		inv.IPNCallbackURL = c.cfg.IPNCallbackURL
	}
	var out Invoice
	if err := c.do(ctx, http.MethodPost, "/invoice", authAPIKey, inv, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetInvoice(ctx context.Context, id string) (*Invoice, error) {
	var out Invoice
	err := c.do(ctx, http.MethodGet, "/invoice/"+url.PathEscape(id), authAPIKey, nil, &out)
	if err != nil {
		if pe, ok := asProviderError(err); ok && pe.Status == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

type invoiceListResponse struct {
	Data []Invoice `json:"data"`
}

func (c *Client) ListInvoices(ctx context.Context) ([]Invoice, error) {
	var out invoiceListResponse
	if err := c.do(ctx, http.MethodGet, "/invoices", authAPIKey, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}
