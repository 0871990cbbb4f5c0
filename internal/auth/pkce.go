// Package auth implements the OAuth flows: PKCE authorization, code and
// refresh token exchange, partner client-credentials exchange, token
// revocation and the session/partner token store.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

const verifierLength = 64

// GenerateVerifier returns a new high-entropy PKCE code verifier. The
// verifier alphabet is the base64url set, which is a subset of the
// unreserved characters RFC 7636 permits.
func GenerateVerifier() (string, error) {
	buf := make([]byte, verifierLength)

	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating code verifier: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf)[:verifierLength], nil
}

// DeriveChallenge computes the S256 code challenge for a verifier:
// base64url(SHA-256(verifier)) without padding.
func DeriveChallenge(verifier string) string {
	sum := sha256.Sum256([]byte(verifier))

	return base64.RawURLEncoding.EncodeToString(sum[:])
}
