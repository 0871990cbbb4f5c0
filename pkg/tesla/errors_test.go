package tesla

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetworkError_Error(t *testing.T) {
	plain := &NetworkError{StatusCode: 500}
	assert.Equal(t, "request failed with status 500", plain.Error())

	reason := "vehicle unavailable"
	detailed := &NetworkError{StatusCode: 408, Message: &ErrorMessage{Err: &reason}}
	assert.Equal(t, "request failed with status 408: vehicle unavailable", detailed.Error())
}

func TestIsNetworkError(t *testing.T) {
	netErr := &NetworkError{StatusCode: 404}
	wrapped := fmt.Errorf("getting vehicle: %w", netErr)

	got, ok := IsNetworkError(wrapped)
	require.True(t, ok)
	assert.Equal(t, 404, got.StatusCode)

	_, ok = IsNetworkError(errors.New("plain"))
	assert.False(t, ok)

	_, ok = IsNetworkError(nil)
	assert.False(t, ok)
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, 429, StatusCode(&NetworkError{StatusCode: 429}))
	assert.Equal(t, 403, StatusCode(fmt.Errorf("wrapped: %w", &NetworkError{StatusCode: 403})))
	assert.Equal(t, 0, StatusCode(ErrAuthenticationRequired))
	assert.Equal(t, 0, StatusCode(nil))
}
