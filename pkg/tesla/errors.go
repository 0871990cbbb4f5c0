package tesla

import (
	"errors"
	"fmt"
)

// Static errors for err113 compliance.
var (
	// ErrAuthenticationRequired is returned when an operation needs a
	// session token and none is stored, or the stored token expired with
	// no refresh token to recover with.
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrAuthenticationFailed is returned when an authorization-code or
	// client-credentials exchange is rejected with HTTP 401, or a login
	// redirect carries no authorization code.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrTokenRevoked is returned when the server reports the access
	// token as invalid via a WWW-Authenticate challenge.
	ErrTokenRevoked = errors.New("token revoked")

	// ErrNoTokenToRefresh is returned by Refresh when no session token
	// is stored.
	ErrNoTokenToRefresh = errors.New("no token to refresh")

	// ErrTokenRefreshFailed is returned when a refresh-token exchange is
	// rejected with HTTP 401.
	ErrTokenRefreshFailed = errors.New("token refresh failed")

	// ErrInvalidOptionsForCommand is returned when a vehicle command is
	// built with options outside its accepted range.
	ErrInvalidOptionsForCommand = errors.New("invalid options for command")

	// ErrFailedToParseData is returned when a 2xx response body cannot
	// be decoded into the expected type.
	ErrFailedToParseData = errors.New("failed to parse data")

	// ErrFailedToReloadVehicle is returned when a vehicle cannot be
	// re-fetched after a wake-up.
	ErrFailedToReloadVehicle = errors.New("failed to reload vehicle")

	// ErrInternal covers failures that are neither server responses nor
	// decode errors.
	ErrInternal = errors.New("internal error")

	// ErrConfigRequired is returned by constructors given a nil config.
	ErrConfigRequired = errors.New("config is required")

	// ErrAPIRequired is returned by constructors given a zero API value.
	ErrAPIRequired = errors.New("API surface is required")
)

// ErrorMessage is the structured error payload some endpoints return.
type ErrorMessage struct {
	Response         *string `json:"response,omitempty"          yaml:"response,omitempty"`
	Err              *string `json:"error,omitempty"             yaml:"error,omitempty"`
	ErrorDescription *string `json:"error_description,omitempty" yaml:"error_description,omitempty"`
}

// NetworkError is a non-2xx response that did not match any sentinel
// classification. Message is present when the body decoded as an
// ErrorMessage.
type NetworkError struct {
	StatusCode int
	Message    *ErrorMessage
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	if e.Message != nil && e.Message.Err != nil {
		return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, *e.Message.Err)
	}

	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// IsNetworkError reports whether err is a NetworkError, returning it.
func IsNetworkError(err error) (*NetworkError, bool) {
	netErr := &NetworkError{}
	if errors.As(err, &netErr) {
		return netErr, true
	}

	return nil, false
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not
// a NetworkError.
func StatusCode(err error) int {
	if netErr, ok := IsNetworkError(err); ok {
		return netErr.StatusCode
	}

	return 0
}
