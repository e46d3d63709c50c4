package airtable

import (
	"time"

	"github.com/fatflowers/paylink/pkg/types"
)

// fieldSchema maps the generic product model onto one table's column names.
// Create, read, list, and update all go through the same instance so the
// mappings cannot drift apart.
type fieldSchema struct {
	company     string
	product     string
	description string
	price       string
	checkoutURL string
	logoURL     string
}

var (
	oneTimeSchema = fieldSchema{
		company:     "Company Name",
		product:     "Product Name",
		description: "Description",
		price:       "Price",
		checkoutURL: "Checkout URL",
		logoURL:     "Logo URL",
	}
	// Subscription plans title their item column differently; everything
	// else matches the orders table.
	subscriptionSchema = fieldSchema{
		company:     "Company Name",
		product:     "Plan Title",
		description: "Description",
		price:       "Price",
		checkoutURL: "Checkout URL",
		logoURL:     "Logo URL",
	}
)

func schemaFor(kind types.Kind) fieldSchema {
	if kind == types.KindSubscription {
		return subscriptionSchema
	}
	return oneTimeSchema
}

// encode renders the non-zero fields as an Airtable fields object.
func (s fieldSchema) encode(f types.ProductFields) map[string]any {
	out := make(map[string]any)
	if f.CompanyName != "" {
		out[s.company] = f.CompanyName
	}
	if f.ProductName != "" {
		out[s.product] = f.ProductName
	}
	if f.Description != "" {
		out[s.description] = f.Description
	}
	if f.Price > 0 {
		out[s.price] = f.Price
	}
	if f.CheckoutURL != "" {
		out[s.checkoutURL] = f.CheckoutURL
	}
	if f.LogoURL != "" {
		out[s.logoURL] = f.LogoURL
	}
	return out
}

// decode builds a Product from an Airtable record's fields object.
func (s fieldSchema) decode(id string, kind types.Kind, created time.Time, fields map[string]any) *types.Product {
	p := &types.Product{ID: id, Kind: kind, CreatedAt: created}
	p.CompanyName, _ = fields[s.company].(string)
	p.ProductName, _ = fields[s.product].(string)
	p.Description, _ = fields[s.description].(string)
	p.CheckoutURL, _ = fields[s.checkoutURL].(string)
	p.LogoURL, _ = fields[s.logoURL].(string)
	if v, ok := fields[s.price].(float64); ok {
		p.Price = v
	}
	return p
}
