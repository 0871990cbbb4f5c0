package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/voltwise-io/teslago/internal/http"
	"github.com/voltwise-io/teslago/pkg/tesla"
)

// staticTokenSource supplies a fixed bearer value.
type staticTokenSource string

func (s staticTokenSource) AuthorizationValue(_ context.Context) (string, error) {
	return string(s), nil
}

// recordingLogger captures structured log calls.
type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *recordingLogger) record(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.messages = append(l.messages, msg)
}

func (l *recordingLogger) recorded() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.messages...)
}

func (l *recordingLogger) Debug(msg string, _ map[string]interface{}) { l.record(msg) }
func (l *recordingLogger) Info(msg string, _ map[string]interface{})  { l.record(msg) }
func (l *recordingLogger) Warn(msg string, _ map[string]interface{})  { l.record(msg) }
func (l *recordingLogger) Error(msg string, _ map[string]interface{}) { l.record(msg) }

func fastRetry() internalhttp.Option {
	return internalhttp.WithRetryConfig(2, time.Millisecond, 5*time.Millisecond)
}

func TestClient_Headers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "teslago", r.Header.Get("User-Agent"))
		assert.Equal(t, "TeslaApp/4.9.2", r.Header.Get("x-tesla-user-agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(staticTokenSource("access-token"))

	resp, err := client.Get(context.Background(), server.URL+"/api/1/vehicles", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestClient_AnonymousRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(staticTokenSource("access-token"))

	_, err := client.Do(context.Background(), &internalhttp.Request{
		Method:    http.MethodPost,
		URL:       server.URL + "/oauth2/v3/token",
		Anonymous: true,
	})
	require.NoError(t, err)
}

func TestClient_PostBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body := make([]byte, r.ContentLength)
		_, _ = r.Body.Read(body)
		assert.JSONEq(t, `{"domain":"example.com"}`, string(body))

		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(nil)

	_, err := client.Post(context.Background(), server.URL+"/api/1/partner_accounts",
		map[string]string{"domain": "example.com"})
	require.NoError(t, err)
}

func TestClient_GetAppendsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "energy", r.URL.Query().Get("kind"))
		assert.Equal(t, "day", r.URL.Query().Get("period"))

		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(nil)

	_, err := client.Get(context.Background(), server.URL+"/api/1/energy_sites/1/history",
		url.Values{"kind": []string{"energy"}, "period": []string{"day"}})
	require.NoError(t, err)
}

func TestClient_RetriesTransientFailures(t *testing.T) {
	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}

		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(nil, fastRetry())

	resp, err := client.Get(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestClient_ExhaustedRetriesReturnLastResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := internalhttp.NewClient(nil, fastRetry())

	resp, err := client.Get(context.Background(), server.URL, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, http.StatusInternalServerError, tesla.StatusCode(err))
}

func TestClient_NoRetryOnClientError(t *testing.T) {
	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "not_found", "error_description": "no such vehicle"}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(nil, fastRetry())

	resp, err := client.Get(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.Equal(t, int32(1), attempts.Load())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	netErr, ok := tesla.IsNetworkError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, netErr.StatusCode)
	require.NotNil(t, netErr.Message)
	require.NotNil(t, netErr.Message.Err)
	assert.Equal(t, "not_found", *netErr.Message.Err)
}

func TestClient_Classification(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		challenge string
		want      error
	}{
		{
			name:      "revoked bearer",
			status:    http.StatusUnauthorized,
			challenge: `Bearer realm="api", error="invalid_token"`,
			want:      tesla.ErrTokenRevoked,
		},
		{
			name:      "revoked bearer on non-401 status",
			status:    http.StatusForbidden,
			challenge: `Bearer error="invalid_token"`,
			want:      tesla.ErrTokenRevoked,
		},
		{
			name:      "rejected credentials",
			status:    http.StatusUnauthorized,
			challenge: `Bearer realm="api"`,
			want:      tesla.ErrAuthenticationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("WWW-Authenticate", tt.challenge)
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := internalhttp.NewClient(nil)

			_, err := client.Get(context.Background(), server.URL, nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClient_DoesNotFollowRedirects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", "https://auth.tesla.cn/oauth2/v3/token")
		w.WriteHeader(http.StatusFound)
	}))
	defer server.Close()

	client := internalhttp.NewClient(nil)

	resp, err := client.Do(context.Background(), &internalhttp.Request{
		Method: http.MethodPost,
		URL:    server.URL,
	})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "https://auth.tesla.cn/oauth2/v3/token", resp.Headers.Get("Location"))
}

func TestClient_CachesGetResponses(t *testing.T) {
	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"response": {"id": 1}}`))
	}))
	defer server.Close()

	cache := tesla.NewMemoryCache(16)
	client := internalhttp.NewClient(nil, internalhttp.WithCache(cache, time.Minute))

	first, err := client.Get(context.Background(), server.URL+"/api/1/vehicles", nil)
	require.NoError(t, err)

	second, err := client.Get(context.Background(), server.URL+"/api/1/vehicles", nil)
	require.NoError(t, err)

	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, first.Body, second.Body)
}

func TestClient_SkipCacheBypassesCache(t *testing.T) {
	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	cache := tesla.NewMemoryCache(16)
	client := internalhttp.NewClient(nil, internalhttp.WithCache(cache, time.Minute))

	for i := 0; i < 2; i++ {
		_, err := client.Do(context.Background(), &internalhttp.Request{
			Method:    http.MethodGet,
			URL:       server.URL,
			SkipCache: true,
		})
		require.NoError(t, err)
	}

	assert.Equal(t, int32(2), hits.Load())
}

func TestClient_CacheSkipsNonGet(t *testing.T) {
	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	cache := tesla.NewMemoryCache(16)
	client := internalhttp.NewClient(nil, internalhttp.WithCache(cache, time.Minute))

	for i := 0; i < 2; i++ {
		_, err := client.Post(context.Background(), server.URL, nil)
		require.NoError(t, err)
	}

	assert.Equal(t, int32(2), hits.Load())
}

func TestClient_DebugLogging(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	logger := &recordingLogger{}
	client := internalhttp.NewClient(nil,
		internalhttp.WithLogger(logger),
		internalhttp.WithDebug(true))

	_, err := client.Get(context.Background(), server.URL, nil)
	require.NoError(t, err)

	messages := logger.recorded()
	assert.Contains(t, messages, "HTTP Request")
	assert.Contains(t, messages, "HTTP Response")
}

func TestClient_CustomUserAgent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "my-app/1.0", r.Header.Get("User-Agent"))

		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(nil, internalhttp.WithUserAgent("my-app/1.0"))

	_, err := client.Get(context.Background(), server.URL, nil)
	require.NoError(t, err)
}
