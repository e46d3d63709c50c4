// Package orderref packs checkout context into the payment provider's
// free-text order reference field so the webhook handler can recover it
// even when no record store backs the payment.
package orderref

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const sep = "|"

// ErrMalformed is returned for references that do not round-trip: wrong part
// count, empty names, or a non-positive price.
var ErrMalformed = errors.New("malformed order reference")

// Ref is the context carried through the provider's order_id field.
type Ref struct {
	CompanyName string
	ProductName string
	Price       float64
}

// Encode renders r as a pipe-separated triple. Names containing the separator
// cannot be decoded back and are rejected up front.
func Encode(r Ref) (string, error) {
	if r.CompanyName == "" || r.ProductName == "" {
		return "", fmt.Errorf("%w: empty name", ErrMalformed)
	}
	if r.Price <= 0 {
		return "", fmt.Errorf("%w: non-positive price", ErrMalformed)
	}
	if strings.Contains(r.CompanyName, sep) || strings.Contains(r.ProductName, sep) {
		return "", fmt.Errorf("%w: name contains %q", ErrMalformed, sep)
	}
	return strings.Join([]string{
		r.CompanyName,
		r.ProductName,
		strconv.FormatFloat(r.Price, 'f', -1, 64),
	}, sep), nil
}

// Decode parses a packed triple. Input that does not split into exactly three
// parts with a parseable positive price fails with ErrMalformed.
func Decode(s string) (Ref, error) {
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return Ref{}, fmt.Errorf("%w: want 3 parts, got %d", ErrMalformed, len(parts))
	}
	if parts[0] == "" || parts[1] == "" {
		return Ref{}, fmt.Errorf("%w: empty name", ErrMalformed)
	}
	price, err := strconv.ParseFloat(parts[2], 64)
	if err != nil || price <= 0 {
		return Ref{}, fmt.Errorf("%w: bad price %q", ErrMalformed, parts[2])
	}
	return Ref{CompanyName: parts[0], ProductName: parts[1], Price: price}, nil
}
