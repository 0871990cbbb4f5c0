package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/voltwise-io/teslago/internal/constants"
	"github.com/voltwise-io/teslago/internal/endpoints"
	internalhttp "github.com/voltwise-io/teslago/internal/http"
	"github.com/voltwise-io/teslago/pkg/tesla"
)

// Authenticator drives the OAuth flows against an API surface and keeps
// the results in a TokenStore. Refreshes are coalesced: concurrent
// callers finding an expired session trigger a single token exchange.
type Authenticator struct {
	api        tesla.API
	store      *TokenStore
	httpClient *internalhttp.Client
	logger     tesla.Logger

	webLoginTimeout time.Duration

	refreshMu sync.Mutex
}

// NewAuthenticator wires an authenticator to an API surface, a token
// store and a transport client.
func NewAuthenticator(api tesla.API, store *TokenStore, httpClient *internalhttp.Client, logger tesla.Logger) *Authenticator {
	return &Authenticator{
		api:             api,
		store:           store,
		httpClient:      httpClient,
		logger:          logger,
		webLoginTimeout: constants.DefaultWebLoginTimeout,
	}
}

// SetWebLoginTimeout overrides the deadline applied to interactive web
// logins.
func (a *Authenticator) SetWebLoginTimeout(timeout time.Duration) {
	if timeout > 0 {
		a.webLoginTimeout = timeout
	}
}

// AuthorizationURL returns the authorization page URL for a fresh PKCE
// challenge along with the verifier to present at code exchange.
func (a *Authenticator) AuthorizationURL() (string, string, error) {
	verifier, err := GenerateVerifier()
	if err != nil {
		return "", "", err
	}

	endpoint := endpoints.Authorize(AuthorizeQuery(a.api, DeriveChallenge(verifier)))

	return endpoint.URL(a.api), verifier, nil
}

// AuthenticateWeb runs the full interactive login: it hands the
// authorization URL to the WebLogin, extracts the code from the redirect
// it returns, and exchanges the code for a session token.
func (a *Authenticator) AuthenticateWeb(ctx context.Context, login tesla.WebLogin) (*tesla.Token, error) {
	authorizationURL, verifier, err := a.AuthorizationURL()
	if err != nil {
		return nil, err
	}

	loginCtx, cancel := context.WithTimeout(ctx, a.webLoginTimeout)
	defer cancel()

	redirectURL, err := login.Authorize(loginCtx, authorizationURL)
	if err != nil {
		return nil, fmt.Errorf("web login: %w", err)
	}

	code, err := codeFromRedirect(redirectURL)
	if err != nil {
		return nil, err
	}

	return a.ExchangeCode(ctx, code, verifier)
}

// ExchangeCode trades an authorization code and its PKCE verifier for a
// session token.
func (a *Authenticator) ExchangeCode(ctx context.Context, code, verifier string) (*tesla.Token, error) {
	token, err := a.requestToken(ctx, codeExchangeRequest(a.api, code, verifier), tesla.ErrAuthenticationFailed)
	if err != nil {
		return nil, err
	}

	a.store.SetSession(token)

	if claims, err := token.IdentityClaims(); err == nil && claims.Email != "" {
		a.store.SetEmail(claims.Email)
	}

	return token, nil
}

// Refresh forces a token refresh using the stored refresh token. The
// stored session is replaced wholesale with the response.
func (a *Authenticator) Refresh(ctx context.Context) (*tesla.Token, error) {
	a.refreshMu.Lock()
	defer a.refreshMu.Unlock()

	return a.refreshLocked(ctx)
}

// EnsureValid makes sure a valid session token is in place, refreshing
// when expired. A valid token never touches the network. Concurrent
// callers racing on an expired token coalesce on one refresh.
func (a *Authenticator) EnsureValid(ctx context.Context) error {
	if a.store.SessionValid() {
		return nil
	}

	a.refreshMu.Lock()
	defer a.refreshMu.Unlock()

	if a.store.SessionValid() {
		return nil
	}

	if a.store.Session() == nil {
		// Partner-only clients authorize with the partner token.
		if a.store.Partner().Valid() {
			return nil
		}

		return tesla.ErrAuthenticationRequired
	}

	if _, err := a.refreshLocked(ctx); err != nil {
		if errors.Is(err, tesla.ErrNoTokenToRefresh) {
			return tesla.ErrAuthenticationRequired
		}

		return err
	}

	return nil
}

func (a *Authenticator) refreshLocked(ctx context.Context) (*tesla.Token, error) {
	session := a.store.Session()
	if session == nil || session.RefreshToken == "" {
		return nil, tesla.ErrNoTokenToRefresh
	}

	token, err := a.requestToken(ctx, refreshRequest(a.api, session.RefreshToken), tesla.ErrTokenRefreshFailed)
	if err != nil {
		return nil, err
	}

	a.store.SetSession(token)

	if a.logger != nil {
		a.logger.Debug("session token refreshed", map[string]interface{}{
			"expires_in": token.ExpiresIn,
		})
	}

	return token, nil
}

// ExchangePartnerCredentials performs the client-credentials grant and
// stores the result as the partner token.
func (a *Authenticator) ExchangePartnerCredentials(ctx context.Context) (*tesla.Token, error) {
	token, err := a.requestToken(ctx, clientCredentialsRequest(a.api), tesla.ErrAuthenticationFailed)
	if err != nil {
		return nil, err
	}

	a.store.SetPartner(token)

	return token, nil
}

// Reuse installs a previously obtained token without any network call.
// A missing created_at is stamped with the current time.
func (a *Authenticator) Reuse(token *tesla.Token, email string) {
	if token == nil {
		return
	}

	token.Normalize(time.Now())
	a.store.SetSession(token)
	a.store.SetEmail(email)
}

// Revoke refreshes an expired session when a refresh token allows it,
// drops all local state, and then asks the server to revoke the access
// token. Local state is cleared before the server call, so a failed
// revoke still leaves the client logged out; the returned bool is the
// server's acknowledgment.
func (a *Authenticator) Revoke(ctx context.Context) (bool, error) {
	session := a.store.Session()
	if session == nil || session.AccessToken == "" {
		a.store.Clear()

		return false, nil
	}

	if err := a.EnsureValid(ctx); err != nil {
		return false, err
	}

	accessToken := a.store.Session().AccessToken
	a.store.Clear()

	endpoint := endpoints.Revoke(accessToken)

	resp, err := a.httpClient.Do(ctx, &internalhttp.Request{
		Method:    endpoint.Method,
		URL:       endpoint.URL(a.api),
		Anonymous: true,
	})
	if err != nil {
		return false, err
	}

	var result tesla.BoolResponse
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return false, tesla.ErrFailedToParseData
	}

	return result.Response, nil
}

// Logout drops the session token locally without contacting the server.
func (a *Authenticator) Logout() {
	a.store.Clear()
}

// requestToken posts a grant body to the token endpoint. A 302 or 403
// from the primary host means the account lives on the China deployment,
// so the exchange is retried exactly once against the China host. A 401
// maps to failErr, which differs per grant.
func (a *Authenticator) requestToken(ctx context.Context, body tokenRequest, failErr error) (*tesla.Token, error) {
	endpoint := endpoints.Token()

	resp, err := a.postToken(ctx, endpoint, body)
	if resp != nil && (resp.StatusCode == http.StatusFound || resp.StatusCode == http.StatusForbidden) {
		if a.logger != nil {
			a.logger.Debug("retrying token exchange against China host", map[string]interface{}{
				"status": resp.StatusCode,
			})
		}

		resp, err = a.postToken(ctx, endpoint.OnAuthBaseCN(), body)
	}

	if resp != nil && resp.StatusCode == http.StatusUnauthorized {
		return nil, failErr
	}

	if err != nil {
		return nil, err
	}

	var token tesla.Token
	if err := json.Unmarshal(resp.Body, &token); err != nil {
		return nil, tesla.ErrFailedToParseData
	}

	token.Normalize(time.Now())

	return &token, nil
}

func (a *Authenticator) postToken(ctx context.Context, endpoint endpoints.Endpoint, body tokenRequest) (*internalhttp.Response, error) {
	return a.httpClient.Do(ctx, &internalhttp.Request{
		Method:    endpoint.Method,
		URL:       endpoint.URL(a.api),
		Body:      body,
		Anonymous: true,
	})
}

func codeFromRedirect(redirectURL string) (string, error) {
	parsed, err := url.Parse(redirectURL)
	if err != nil {
		return "", fmt.Errorf("parsing redirect URL: %w", err)
	}

	code := parsed.Query().Get("code")
	if code == "" {
		return "", tesla.ErrAuthenticationFailed
	}

	return code, nil
}
