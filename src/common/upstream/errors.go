package upstream

import (
	"errors"
	"fmt"
)

var (
	ErrTransport         = errors.New("upstream unreachable")
	ErrTimeout           = errors.New("upstream request timed out")
	ErrHTTPStatus        = errors.New("upstream returned an error status")
	ErrDeserialization   = errors.New("upstream response did not match the expected shape")
	ErrInvalidIdentifier = errors.New("invalid identifier")
)

// TransportError is a connection, DNS, TLS, read or timeout failure. A timed
// out request matches both ErrTransport and ErrTimeout.
type TransportError struct {
	URL     string
	Timeout bool
	Err     error
}

func (e *TransportError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("GET %s: timed out: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("GET %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport || (e.Timeout && target == ErrTimeout)
}

// HTTPStatusError is a non-2xx response. Body holds at most the first 4 KiB.
type HTTPStatusError struct {
	URL        string
	StatusCode int
	Body       []byte
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status code: %d", e.URL, e.StatusCode)
}

func (e *HTTPStatusError) Is(target error) bool {
	return target == ErrHTTPStatus
}

type DeserializationError struct {
	URL string
	Err error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("GET %s: decoding response: %v", e.URL, e.Err)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}

func (e *DeserializationError) Is(target error) bool {
	return target == ErrDeserialization
}

// InvalidIdentifierError is returned before any request is made.
type InvalidIdentifierError struct {
	Kind   string
	Value  string
	Reason string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Kind, e.Value, e.Reason)
}

func (e *InvalidIdentifierError) Is(target error) bool {
	return target == ErrInvalidIdentifier
}

// IsClientError reports whether err was caused by caller input rather than
// by the upstream or the transport.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidIdentifier)
}
