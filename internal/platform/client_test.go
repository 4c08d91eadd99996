package platform

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alvesdmateus/paasctl/pkg/config"
)

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := New(config.APIConfig{
		BaseURL: baseURL,
		Key:     "test-key",
		Timeout: 5 * time.Second,
	}, zerolog.Nop())
	require.NoError(t, err)
	return client
}

func TestNew_MissingKey(t *testing.T) {
	_, err := New(config.APIConfig{BaseURL: "https://api.example.com"}, zerolog.Nop())
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestClient_SendsAuthAndContentHeaders(t *testing.T) {
	var got *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(r.Context())
		w.Write([]byte(`{"status":"success"}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	_, err := client.Do(context.Background(), http.MethodPost, "/v1/projects", map[string]string{"name": "web"})
	require.NoError(t, err)

	assert.Equal(t, "test-key", got.Header.Get("X-Api-Key"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.NotEmpty(t, got.Header.Get("X-Request-Id"))
}

func TestClient_NoContentTypeWithoutBody(t *testing.T) {
	var contentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	_, err := client.Do(context.Background(), http.MethodGet, "/v1/projects", nil)
	require.NoError(t, err)
	assert.Empty(t, contentType)
}

func TestClient_SuccessReturnsRawBody(t *testing.T) {
	body := `{"status":"success","data":{"id":"p-1"}}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	raw, err := client.Do(context.Background(), http.MethodGet, "/v1/projects/p-1", nil)
	require.NoError(t, err)
	assert.Equal(t, body, string(raw))
}

func TestClient_ApplicationFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// HTTP 200 carrying a logical failure
		w.Write([]byte(`{"status":"error","error":{"message":"project already exists"}}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	_, err := client.Do(context.Background(), http.MethodPost, "/v1/projects", map[string]string{"name": "web"})

	var apiErr ErrAPIFailure
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "project already exists", apiErr.Message)
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := testClient(t, server.URL)
	_, err := client.Do(context.Background(), http.MethodGet, "/v1/projects", nil)

	var transportErr ErrTransport
	assert.ErrorAs(t, err, &transportErr)
}

func TestClient_ProtocolErrorOnNonJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway timeout</html>"))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	_, err := client.Do(context.Background(), http.MethodGet, "/v1/projects", nil)

	var protoErr ErrProtocol
	assert.ErrorAs(t, err, &protoErr)
}

func TestClient_GetEnvironmentNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","data":[{"uniqueName":"production"}]}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	_, err := client.GetEnvironment(context.Background(), "web", "staging")

	var notFound ErrNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "staging", notFound.Name)
}

func TestClient_GetEnvironmentKeepsUnknownFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","data":[{"uniqueName":"staging","region":"eu-west"}]}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	env, err := client.GetEnvironment(context.Background(), "web", "staging")
	require.NoError(t, err)
	assert.Equal(t, "eu-west", env["region"])
}

func TestClient_RuntimeLogsPassQuery(t *testing.T) {
	var query string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Write([]byte(`{"status":"success","data":"line one\nline two"}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	text, err := client.GetRuntimeLogs(context.Background(), "d-1", "30m")
	require.NoError(t, err)
	assert.Equal(t, "since=30m", query)
	assert.Equal(t, "line one\nline two", text)
}

func TestClient_ErrorsAreTerminal(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"status":"error","data":"nope"}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	_, err := client.Do(context.Background(), http.MethodGet, "/v1/projects", nil)
	require.Error(t, err)

	// no retries on any failure class
	assert.Equal(t, 1, calls)
	assert.False(t, errors.Is(err, ErrMissingAPIKey))
}
