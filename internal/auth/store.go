package auth

import (
	"context"
	"sync"

	"github.com/voltwise-io/teslago/pkg/tesla"
)

// TokenStore holds the session and partner tokens behind a mutex.
// Tokens are replaced wholesale on every store; there is no field-level
// merging.
type TokenStore struct {
	mu      sync.RWMutex
	session *tesla.Token
	partner *tesla.Token
	email   string
}

// NewTokenStore returns an empty store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Session returns the current session token, or nil.
func (s *TokenStore) Session() *tesla.Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session
}

// Partner returns the current partner token, or nil.
func (s *TokenStore) Partner() *tesla.Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.partner
}

// Email returns the account email recorded alongside the session token.
func (s *TokenStore) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.email
}

// SetSession replaces the session token.
func (s *TokenStore) SetSession(token *tesla.Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = token
}

// SetPartner replaces the partner token.
func (s *TokenStore) SetPartner(token *tesla.Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.partner = token
}

// SetEmail records the account email for the current session.
func (s *TokenStore) SetEmail(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.email = email
}

// SessionValid reports whether a usable session token is present.
func (s *TokenStore) SessionValid() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session.Valid()
}

// AuthorizationValue returns the bearer for outgoing API requests: the
// session token when one is valid, the partner token as fallback, empty
// otherwise.
func (s *TokenStore) AuthorizationValue(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session.Valid() {
		return s.session.AccessToken, nil
	}

	if s.partner.Valid() {
		return s.partner.AccessToken, nil
	}

	return "", nil
}

// Clear drops both tokens and the email. A logout or revoke leaves
// nothing behind.
func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	s.partner = nil
	s.email = ""
}
