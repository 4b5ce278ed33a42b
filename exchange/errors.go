package exchange

import "fmt"

// TransportError wraps any failure reported by the HTTP client: DNS,
// connection, TLS or timeout.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("sending HTTP request: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// UnsupportedMethodError means a method the command line should have
// rejected reached the dispatcher. It is a bug, not a user error.
type UnsupportedMethodError struct {
	Method string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("internal error: unsupported method %q reached the dispatcher", e.Method)
}
