// Package response defines the wire format shared by every HTTP error the
// API returns: a client-safe message plus a machine-readable kind, so the
// UI can distinguish failure modes without parsing prose.
package response

import "net/http"

type Kind string

const (
	KindValidation       Kind = "validation"
	KindNotFound         Kind = "not_found"
	KindUnsupported      Kind = "unsupported"
	KindStoreUnavailable Kind = "store_unavailable"
	KindProvider         Kind = "provider_error"
	KindInternal         Kind = "internal"
)

// Status is the HTTP status conventionally paired with k.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnsupported:
		return http.StatusConflict
	case KindProvider:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Error is the body of every non-2xx response.
type Error struct {
	Message string `json:"error"`
	Kind    Kind   `json:"kind"`
}

// Err builds an error body. Upstream detail never goes here; it belongs in
// the server-side log.
func Err(kind Kind, msg string) *Error {
	return &Error{Message: msg, Kind: kind}
}
