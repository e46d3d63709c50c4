package types

import "time"

// Kind discriminates the two record tables. The same identifier shape is used
// by both, so a bare id is ambiguous; always carry the kind alongside it.
type Kind string

const (
	KindOneTime      Kind = "one_time"
	KindSubscription Kind = "subscription"
)

// KindFromQuery maps the wire discriminator ("sub" on the type query/body
// field) to a Kind. Anything else means one-time.
func KindFromQuery(v string) Kind {
	if v == "sub" {
		return KindSubscription
	}
	return KindOneTime
}

// QueryValue is the inverse of KindFromQuery, used when composing checkout URLs.
func (k Kind) QueryValue() string {
	if k == KindSubscription {
		return "sub"
	}
	return ""
}

// Display is the customer-facing label used by the product detail view.
func (k Kind) Display() string {
	if k == KindSubscription {
		return "subscription"
	}
	return "one-time"
}

// ListLabel is the label used by the merchant product list.
func (k Kind) ListLabel() string {
	if k == KindSubscription {
		return "subscription"
	}
	return "payment_link"
}

// ProductRef names one record unambiguously: kind plus store-assigned id.
type ProductRef struct {
	Kind Kind
	ID   string
}

// Product is a sellable item: a one-time payment link or a recurring plan.
type Product struct {
	ID          string
	Kind        Kind
	CompanyName string
	ProductName string
	Description string
	Price       float64
	CheckoutURL string
	LogoURL     string
	CreatedAt   time.Time
}

// ProductFields is the writable subset of a Product for create and partial
// update calls. Zero values are left unset by the store.
type ProductFields struct {
	CompanyName string
	ProductName string
	Description string
	Price       float64
	CheckoutURL string
	LogoURL     string
}
