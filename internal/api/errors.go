package api

import "fmt"

// TransportError means the request never produced an HTTP response
// (network unreachable, timeout, connection refused).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// AuthError is a 401 response: the credential is missing, invalid, or
// expired. During bootstrap it forces a logout; on a user action it is
// rendered as a form-level message.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "authentication failed"
}

// ServerError is any other non-2xx response, carrying the server's
// message payload when one was sent.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server error: HTTP %d", e.StatusCode)
}

// Message extracts a user-presentable message from an API error,
// falling back to the given generic text. Views use this to prefer
// whatever the server said over a canned string.
func Message(err error, fallback string) string {
	switch e := err.(type) {
	case *AuthError:
		if e.Message != "" {
			return e.Message
		}
	case *ServerError:
		if e.Message != "" {
			return e.Message
		}
	}
	return fallback
}
