// Package http implements the transport layer shared by every API
// operation: retrying HTTP client, vendor headers, bearer injection,
// response caching and classification of failures into the public error
// taxonomy.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/voltwise-io/teslago/internal/constants"
	"github.com/voltwise-io/teslago/pkg/tesla"
)

// TokenSource supplies the bearer value for outgoing requests. An empty
// string means the request goes out unauthenticated.
type TokenSource interface {
	AuthorizationValue(ctx context.Context) (string, error)
}

// Request describes a single API call.
type Request struct {
	Method  string
	URL     string
	Body    interface{}
	Headers map[string]string
	// Anonymous suppresses the Authorization header. OAuth endpoints
	// carry their credentials in the body instead.
	Anonymous bool
	// SkipCache bypasses the response cache for this call.
	SkipCache bool
}

// Response is the decoded-enough result of a call: status, headers and
// the raw body for the caller to unmarshal.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client wraps retryablehttp with the conventions every endpoint shares.
// Redirects are never followed so callers can observe 3xx statuses.
type Client struct {
	httpClient  *retryablehttp.Client
	tokenSource TokenSource
	userAgent   string
	logger      tesla.Logger
	debug       bool
	cache       tesla.Cache
	cacheTTL    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger tesla.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig tunes the retry policy.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = maxRetries
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithCache installs a response cache for GET requests.
func WithCache(cache tesla.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

// NewClient creates a transport client. tokenSource may be nil for
// clients that only talk to the OAuth endpoints.
func NewClient(tokenSource TokenSource, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.Logger = nil
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.HTTPClient.CheckRedirect = func(_ *http.Request, _ []*http.Request) error {
		return http.ErrUseLastResponse
	}

	client := &Client{
		httpClient:  retryClient,
		tokenSource: tokenSource,
		userAgent:   constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes a request. Non-2xx statuses classify into the public error
// taxonomy; the Response is returned alongside the error so callers can
// still inspect the status and headers.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if cached := c.cachedResponse(ctx, req); cached != nil {
		return cached, nil
	}

	var bodyBytes []byte

	if req.Body != nil {
		var err error

		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, req.URL, bodyBytes)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	c.setHeaders(ctx, httpReq, req, bodyBytes)

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    req.URL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": resp.StatusCode,
			"url":    req.URL,
		})
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		c.storeResponse(ctx, req, resp)

		return resp, nil
	}

	return resp, classify(resp)
}

// Get performs a GET request. Query parameters, if any, are appended to
// the target URL.
func (c *Client) Get(ctx context.Context, target string, query url.Values) (*Response, error) {
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	return c.Do(ctx, &Request{Method: http.MethodGet, URL: target})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, target string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, URL: target, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, target string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, URL: target, Body: body})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, target string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, URL: target, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, target string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, URL: target})
}

func (c *Client) setHeaders(ctx context.Context, httpReq *retryablehttp.Request, req *Request, body []byte) {
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set(constants.VendorUserAgentHeader, constants.VendorUserAgent)
	httpReq.Header.Set("Accept", "application/json")

	if len(body) > 0 {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if !req.Anonymous && c.tokenSource != nil {
		if value, err := c.tokenSource.AuthorizationValue(ctx); err == nil && value != "" {
			httpReq.Header.Set("Authorization", "Bearer "+value)
		}
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
}

func (c *Client) cachedResponse(ctx context.Context, req *Request) *Response {
	if c.cache == nil || req.SkipCache || req.Method != http.MethodGet {
		return nil
	}

	entry, err := c.cache.Get(ctx, req.URL)
	if err != nil {
		return nil
	}

	var resp Response
	if err := json.Unmarshal(entry.Data, &resp); err != nil {
		return nil
	}

	return &resp
}

func (c *Client) storeResponse(ctx context.Context, req *Request, resp *Response) {
	if c.cache == nil || req.SkipCache || req.Method != http.MethodGet {
		return
	}

	data, err := json.Marshal(resp)
	if err != nil {
		return
	}

	entry := &tesla.CacheEntry{Data: data, ExpiresAt: time.Now().Add(c.cacheTTL)}

	if err := c.cache.Set(ctx, req.URL, entry); err != nil && c.logger != nil {
		c.logger.Warn("failed to cache response", map[string]interface{}{
			"url":   req.URL,
			"error": err.Error(),
		})
	}
}

// classify maps a non-2xx response to the public error taxonomy. The
// WWW-Authenticate header takes priority: a revoked bearer is reported
// there regardless of status.
func classify(resp *Response) error {
	challenge := resp.Headers.Get("WWW-Authenticate")

	if strings.Contains(challenge, "invalid_token") {
		return tesla.ErrTokenRevoked
	}

	if challenge != "" && resp.StatusCode == http.StatusUnauthorized {
		return tesla.ErrAuthenticationFailed
	}

	networkErr := &tesla.NetworkError{StatusCode: resp.StatusCode}

	var message tesla.ErrorMessage
	if len(resp.Body) > 0 && json.Unmarshal(resp.Body, &message) == nil {
		if message.Response != nil || message.Err != nil || message.ErrorDescription != nil {
			networkErr.Message = &message
		}
	}

	return networkErr
}
