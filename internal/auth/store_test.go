package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltwise-io/teslago/pkg/tesla"
)

func validToken(access string) *tesla.Token {
	return &tesla.Token{
		AccessToken: access,
		TokenType:   "bearer",
		CreatedAt:   tesla.NewTimestamp(time.Now()),
		ExpiresIn:   3600,
	}
}

func expiredToken(access string) *tesla.Token {
	return &tesla.Token{
		AccessToken: access,
		TokenType:   "bearer",
		CreatedAt:   tesla.NewTimestamp(time.Now().Add(-2 * time.Hour)),
		ExpiresIn:   3600,
	}
}

func TestTokenStore_SessionLifecycle(t *testing.T) {
	store := NewTokenStore()

	assert.Nil(t, store.Session())
	assert.False(t, store.SessionValid())

	store.SetSession(validToken("session-token"))
	store.SetEmail("owner@example.com")

	require.NotNil(t, store.Session())
	assert.True(t, store.SessionValid())
	assert.Equal(t, "owner@example.com", store.Email())

	store.Clear()

	assert.Nil(t, store.Session())
	assert.Empty(t, store.Email())
	assert.False(t, store.SessionValid())
}

func TestTokenStore_ClearDropsBothTokens(t *testing.T) {
	store := NewTokenStore()
	store.SetSession(validToken("session-token"))
	store.SetPartner(validToken("partner-token"))
	store.SetEmail("owner@example.com")

	store.Clear()

	assert.Nil(t, store.Session())
	assert.Nil(t, store.Partner())
	assert.Empty(t, store.Email())

	value, err := store.AuthorizationValue(context.Background())
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestTokenStore_AuthorizationValue(t *testing.T) {
	tests := []struct {
		name    string
		session *tesla.Token
		partner *tesla.Token
		want    string
	}{
		{
			name: "no tokens",
			want: "",
		},
		{
			name:    "valid session",
			session: validToken("session-token"),
			want:    "session-token",
		},
		{
			name:    "session preferred over partner",
			session: validToken("session-token"),
			partner: validToken("partner-token"),
			want:    "session-token",
		},
		{
			name:    "partner fallback when session expired",
			session: expiredToken("session-token"),
			partner: validToken("partner-token"),
			want:    "partner-token",
		},
		{
			name:    "expired partner yields nothing",
			partner: expiredToken("partner-token"),
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewTokenStore()
			store.SetSession(tt.session)
			store.SetPartner(tt.partner)

			value, err := store.AuthorizationValue(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, value)
		})
	}
}

func TestTokenStore_SetSessionReplacesWholesale(t *testing.T) {
	store := NewTokenStore()

	first := validToken("first")
	first.RefreshToken = "first-refresh"
	store.SetSession(first)

	second := validToken("second")
	store.SetSession(second)

	require.NotNil(t, store.Session())
	assert.Equal(t, "second", store.Session().AccessToken)
	assert.Empty(t, store.Session().RefreshToken)
}
