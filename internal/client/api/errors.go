package api

import "errors"

// ErrUnavailable marks transport-level failures: the request never produced
// an HTTP response (connection refused, DNS failure, timeout). Distinct from
// a ServerError, which the backend reported deliberately.
var ErrUnavailable = errors.New("server unavailable")

// ServerError is a non-success HTTP response from the backend. Message is the
// server-supplied error text when the body carried one, otherwise a generic
// per-endpoint fallback.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return e.Message
}
