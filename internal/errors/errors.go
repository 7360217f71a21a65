// internal/errors/errors.go
//
// Package errors defines reusable error types for gatecrawl.
// Using structured errors allows callers to inspect and react to
// specific failure modes, such as configuration issues or fetch
// failures, without parsing message strings.
package errors

import "fmt"

// Kind represents a high-level category of error.
type Kind string

const (
	// KindUnknown represents an unspecified error category.
	KindUnknown Kind = "unknown"

	// KindConfig indicates a configuration-related error.
	KindConfig Kind = "config"

	// KindTransport indicates a failure reaching the gateway over HTTP.
	KindTransport Kind = "transport"

	// KindParse indicates an error parsing a fetched document as HTML.
	KindParse Kind = "parse"

	// KindGateway indicates a gateway-signaled content resolution
	// failure (e.g. the target CID could not be resolved), as opposed
	// to a transport-level failure.
	KindGateway Kind = "gateway"
)

// Error is gatecrawl's structured error type.
//
// It wraps a human-readable message and a Kind identifier so that callers
// can distinguish between different failure classes programmatically.
type Error struct {
	Kind Kind   // high-level category of the error
	Msg  string // descriptive message
	Err  error  // underlying error, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap returns the underlying error, enabling errors.Is/As usage.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error with the provided kind and message.
//
// The underlying error may be nil if there is no nested error.
func New(kind Kind, msg string, underlying error) *Error {
	return &Error{
		Kind: kind,
		Msg:  msg,
		Err:  underlying,
	}
}

// IsTimeout reports whether err, or anything it wraps, represents a
// network timeout. Workers use this to distinguish the redirect-follow
// timeout re-enqueue case from an ordinary dropped failure.
func IsTimeout(err error) bool {
	type timeouter interface{ Timeout() bool }
	for err != nil {
		if t, ok := err.(timeouter); ok && t.Timeout() {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
