package tesla

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token is an OAuth token as returned by the token endpoint. Both session
// and partner tokens share this shape. Tokens are replaced wholesale on
// refresh, never mutated field by field.
type Token struct {
	AccessToken  string    `json:"access_token"            yaml:"access_token"`
	TokenType    string    `json:"token_type"              yaml:"token_type"`
	CreatedAt    Timestamp `json:"created_at"              yaml:"created_at"`
	ExpiresIn    int64     `json:"expires_in"              yaml:"expires_in"`
	RefreshToken string    `json:"refresh_token,omitempty" yaml:"refresh_token,omitempty"`
	IDToken      string    `json:"id_token,omitempty"      yaml:"id_token,omitempty"`
}

// Valid reports whether the token is still usable: elapsed time since
// issue must be strictly below the expiry duration. At exactly the expiry
// boundary the token is invalid.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.CreatedAt.IsZero() || t.ExpiresIn <= 0 {
		return false
	}

	return time.Since(t.CreatedAt.Time) < time.Duration(t.ExpiresIn)*time.Second
}

// Normalize stamps the issue time when the server omitted created_at.
func (t *Token) Normalize(now time.Time) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = NewTimestamp(now)
	}
}

// IdentityClaims is the subset of id_token claims the library surfaces.
type IdentityClaims struct {
	Subject string
	Email   string
	Issuer  string
	Expiry  time.Time
}

// IdentityClaims decodes the id_token claims without verifying the
// signature. The token came over TLS from the issuer; this is display
// metadata, not an authentication decision.
func (t *Token) IdentityClaims() (*IdentityClaims, error) {
	if t == nil || t.IDToken == "" {
		return nil, fmt.Errorf("%w: no id_token present", ErrInternal)
	}

	claims := jwt.MapClaims{}

	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(t.IDToken, claims); err != nil {
		return nil, fmt.Errorf("parsing id_token: %w", err)
	}

	identity := &IdentityClaims{}

	if sub, err := claims.GetSubject(); err == nil {
		identity.Subject = sub
	}

	if iss, err := claims.GetIssuer(); err == nil {
		identity.Issuer = iss
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		identity.Expiry = exp.Time
	}

	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}

	return identity, nil
}
