package transport

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// ErrorCodeAuthExpired identifies *AuthExpiredError.
	ErrorCodeAuthExpired = "AUTH_EXPIRED"
	// DefaultAuthExpiredMessage is used when no message is configured.
	DefaultAuthExpiredMessage = "session expired, please reconnect"
)

// HTTPError reports a non-success response.
type HTTPError struct {
	Status int
	Data   any
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("request failed with status %d (%s)", e.Status, http.StatusText(e.Status))
}

// AuthExpiredError is returned when no valid bearer token could be obtained.
type AuthExpiredError struct {
	Status  int
	Code    string
	Message string
}

func (e *AuthExpiredError) Error() string {
	return e.Message
}

// NewAuthExpiredError creates an auth expired error, message defaults to DefaultAuthExpiredMessage.
func NewAuthExpiredError(message string) *AuthExpiredError {
	if message == "" {
		message = DefaultAuthExpiredMessage
	}
	return &AuthExpiredError{Status: http.StatusUnauthorized, Code: ErrorCodeAuthExpired, Message: message}
}

// IsAuthExpired reports whether err is or wraps an *AuthExpiredError.
func IsAuthExpired(err error) bool {
	var expired *AuthExpiredError
	return errors.As(err, &expired)
}

// NetworkError reports a failure of the underlying transport.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: network error: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// networkError returns the *NetworkError carried by err when there is one.
func networkError(method, URL string, err error) error {
	var actual *NetworkError
	if errors.As(err, &actual) {
		return actual
	}
	if err == nil {
		err = errors.New("unknown transport failure")
	}
	return &NetworkError{Method: method, URL: URL, Err: err}
}
