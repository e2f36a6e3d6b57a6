// Package apierr turns failing Blog API responses into a small closed set of
// typed error kinds, so callers can branch on the failure category instead of
// string-matching messages or memorizing status codes.
package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Kind is the discriminant tag of an APIError. The set is closed: every
// status >= 400 maps to exactly one Kind, with KindGeneric as the catch-all.
type Kind int

const (
	KindGeneric Kind = iota // any status >= 400 not covered by a specific rule
	KindNotFound
	KindAuth
	KindValidation
	KindRateLimit
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindAuth:
		return "auth"
	case KindValidation:
		return "validation"
	case KindRateLimit:
		return "rate_limit"
	case KindServer:
		return "server"
	default:
		return "generic"
	}
}

// ClassifyStatus maps an HTTP status to its Kind. Total over the status
// space; statuses below 400 never reach this point in practice but also
// classify to KindGeneric.
func ClassifyStatus(status int) Kind {
	switch {
	case status == 404:
		return KindNotFound
	case status == 401 || status == 403:
		return KindAuth
	case status == 429:
		return KindRateLimit
	case status == 400 || status == 422:
		return KindValidation
	case status >= 500:
		return KindServer
	default:
		return KindGeneric
	}
}

// APIError is a failing response the server actually returned. Transport
// failures (timeouts, refused connections) are never an APIError.
type APIError struct {
	Kind    Kind
	Status  int             // HTTP status
	Code    string          // server machine code ("NOT_FOUND", "VALIDATION_ERROR", ...) if present
	Message string          // human-readable summary
	Body    json.RawMessage // response body, nil when it was not valid JSON
	Raw     string          // trimmed raw body
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

func is(err error, k Kind) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Kind == k
}

// IsNotFound reports whether err is a missing-resource failure (404).
func IsNotFound(err error) bool { return is(err, KindNotFound) }

// IsAuth reports whether err is a missing/invalid/insufficient credential
// failure (401, 403).
func IsAuth(err error) bool { return is(err, KindAuth) }

// IsValidation reports whether err is a request rejected by server-side
// checks (400, 422).
func IsValidation(err error) bool { return is(err, KindValidation) }

// IsRateLimit reports whether err is a quota failure (429).
func IsRateLimit(err error) bool { return is(err, KindRateLimit) }

// IsServer reports whether err is an operator-visible 5xx failure.
func IsServer(err error) bool { return is(err, KindServer) }
