// Package store defines the record-store contract shared by the Airtable,
// in-memory, and provider-backed product backends.
package store

import (
	"context"
	"errors"

	"github.com/fatflowers/paylink/pkg/types"
)

var (
	// ErrNotFound means the ref does not resolve within its kind's table.
	ErrNotFound = errors.New("record not found")
	// ErrStoreUnavailable means the backend is missing configuration
	// (credentials or dataset identifiers). Surfaced on first use, never at
	// startup.
	ErrStoreUnavailable = errors.New("record store unavailable")
	// ErrUnsupported means the backend cannot perform the operation at all,
	// e.g. deleting from the provider's immutable invoice history.
	ErrUnsupported = errors.New("operation not supported by store backend")
)

// Store is CRUD access to product/plan records. The two kinds live in
// independent tables; every call carries the kind discriminator because the
// identifier space alone does not disambiguate them.
type Store interface {
	// Create persists a new record and returns it with a store-assigned id.
	Create(ctx context.Context, kind types.Kind, fields types.ProductFields) (*types.Product, error)
	// Get fetches one record or fails with ErrNotFound.
	Get(ctx context.Context, ref types.ProductRef) (*types.Product, error)
	// List returns all records of one kind in store-native order; callers
	// merge kinds and sort for display.
	List(ctx context.Context, kind types.Kind) ([]*types.Product, error)
	// Update applies a partial merge of the non-zero fields.
	Update(ctx context.Context, ref types.ProductRef, fields types.ProductFields) error
	// Delete removes the record. ErrNotFound when absent, ErrUnsupported
	// when the backend forbids deletion.
	Delete(ctx context.Context, ref types.ProductRef) error
}
