package auth

import (
	"net/url"

	"github.com/google/uuid"

	"github.com/voltwise-io/teslago/pkg/tesla"
)

// tokenRequest is the JSON body of the token endpoint. Fields outside
// the active grant stay absent on the wire, so everything but grant_type
// and client_id is omitempty.
type tokenRequest struct {
	GrantType    string `json:"grant_type"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret,omitempty"`
	Code         string `json:"code,omitempty"`
	CodeVerifier string `json:"code_verifier,omitempty"`
	RedirectURI  string `json:"redirect_uri,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
	Scope        string `json:"scope,omitempty"`
	Audience     string `json:"audience,omitempty"`
}

func codeExchangeRequest(api tesla.API, code, verifier string) tokenRequest {
	return tokenRequest{
		GrantType:    "authorization_code",
		ClientID:     api.ClientID(),
		ClientSecret: api.ClientSecret(),
		Code:         code,
		CodeVerifier: verifier,
		RedirectURI:  api.RedirectURI(),
		Audience:     api.Audience(),
	}
}

func refreshRequest(api tesla.API, refreshToken string) tokenRequest {
	return tokenRequest{
		GrantType:    "refresh_token",
		ClientID:     api.ClientID(),
		RefreshToken: refreshToken,
		Scope:        api.Scope(),
	}
}

func clientCredentialsRequest(api tesla.API) tokenRequest {
	return tokenRequest{
		GrantType:    "client_credentials",
		ClientID:     api.ClientID(),
		ClientSecret: api.ClientSecret(),
		Scope:        api.Scope(),
		Audience:     api.Audience(),
	}
}

// AuthorizeQuery builds the query string of the authorization page for a
// fresh PKCE challenge. The state parameter is a random nonce the caller
// should verify on the redirect.
func AuthorizeQuery(api tesla.API, challenge string) url.Values {
	return url.Values{
		"client_id":             []string{api.ClientID()},
		"redirect_uri":          []string{api.RedirectURI()},
		"response_type":         []string{"code"},
		"scope":                 []string{api.Scope()},
		"state":                 []string{uuid.NewString()},
		"code_challenge":        []string{challenge},
		"code_challenge_method": []string{"S256"},
	}
}
