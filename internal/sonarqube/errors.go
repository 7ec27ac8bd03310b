package sonarqube

import (
	"errors"
	"fmt"
)

// ErrInvalidServerURL is returned by NewClient when the server URL does not
// parse or uses a scheme other than http/https.
var ErrInvalidServerURL = errors.New("invalid server URL: expected http(s)://host[:port]")

// APIError is returned when the server answered the request but the answer
// is unusable: a non-2xx status, or a 2xx body that does not decode as the
// expected JSON.
type APIError struct {
	// StatusCode is the HTTP status the server returned.
	StatusCode int

	// Message carries the response body (truncated) or the decode failure.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("sonarqube API error: status %d: %s", e.StatusCode, e.Message)
}

// Is reports whether target is an APIError with the same status code, or
// any APIError when target's status code is zero. This lets tests assert
// "some APIError with status 401" without matching the message.
func (e *APIError) Is(target error) bool {
	var other *APIError
	if !errors.As(target, &other) {
		return false
	}
	return other.StatusCode == 0 || other.StatusCode == e.StatusCode
}

// NetworkError is returned when the request never produced an HTTP response:
// DNS failure, refused connection, timeout, TLS failure.
type NetworkError struct {
	// URL is the request URL without query parameters (the token never
	// appears in the query, but the project key may; path-only is enough
	// to identify the failing endpoint).
	URL string

	// Err is the underlying transport error.
	Err error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("sonarqube network error: %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying transport error for errors.Is/As chains.
func (e *NetworkError) Unwrap() error {
	return e.Err
}
