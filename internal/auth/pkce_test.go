package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVerifier(t *testing.T) {
	verifier, err := GenerateVerifier()
	require.NoError(t, err)
	assert.Len(t, verifier, 64)

	for _, c := range verifier {
		valid := (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') ||
			(c >= '0' && c <= '9') || c == '-' || c == '_'
		assert.True(t, valid, "unexpected verifier character %q", c)
	}
}

func TestGenerateVerifier_Unique(t *testing.T) {
	first, err := GenerateVerifier()
	require.NoError(t, err)

	second, err := GenerateVerifier()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDeriveChallenge(t *testing.T) {
	tests := []struct {
		name      string
		verifier  string
		challenge string
	}{
		{
			name:      "known vector",
			verifier:  "test-verifier-1234567890",
			challenge: "Gx2LV1Kvw_rrHrk344X_Qz0hqvHkKf-7XJ12eAI03T4",
		},
		{
			name:      "second vector",
			verifier:  "another-verifier",
			challenge: "ioUtroeXJeFk4m9JCRbj550sEciRBF4Rj3vONdfv63Y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.challenge, DeriveChallenge(tt.verifier))
		})
	}
}

func TestDeriveChallenge_Deterministic(t *testing.T) {
	verifier, err := GenerateVerifier()
	require.NoError(t, err)

	assert.Equal(t, DeriveChallenge(verifier), DeriveChallenge(verifier))
	assert.Len(t, DeriveChallenge(verifier), 43)
}
