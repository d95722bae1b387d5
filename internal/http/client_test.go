package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	gatewayhttp "github.com/storekit-io/catalog-admin-client/internal/http"
	"github.com/storekit-io/catalog-admin-client/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticTokens supplies a fixed bearer token.
type staticTokens struct {
	token string
}

func (s *staticTokens) Token() string {
	return s.token
}

// recordingHandler counts forced-logout invocations.
type recordingHandler struct {
	calls atomic.Int64
}

func (h *recordingHandler) HandleUnauthorized() {
	h.calls.Add(1)
}

func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/categories", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			response := map[string]string{"status": "success"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := gatewayhttp.NewClient(server.URL, &staticTokens{token: "test-token"})

		resp, err := client.Get(context.Background(), "/categories", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("no token means no authorization header", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Empty(t, request.Header.Get("Authorization"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := gatewayhttp.NewClient(server.URL, &staticTokens{})

		_, err := client.Get(context.Background(), "/categories", nil)
		require.NoError(t, err)
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "page=2", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := gatewayhttp.NewClient(server.URL, nil)

		_, err := client.Get(context.Background(), "/products", url.Values{"page": []string{"2"}})
		require.NoError(t, err)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "Dairy", body["name"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := gatewayhttp.NewClient(server.URL, nil)

		resp, err := client.Post(context.Background(), "/categories", map[string]string{"name": "Dairy"})
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("server error carries the server message", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(writer).Encode(map[string]string{"message": "Slug already exists"})
		}))
		defer server.Close()

		client := gatewayhttp.NewClient(server.URL, nil)

		resp, err := client.Post(context.Background(), "/categories", nil)
		require.Error(t, err)

		// The response is still returned so callers can inspect it.
		require.NotNil(t, resp)
		assert.Equal(t, 422, resp.StatusCode)

		apiErr := &catalog.Error{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, catalog.ErrorCodeServer, apiErr.Code)
		assert.Equal(t, 422, apiErr.StatusCode)
		assert.Equal(t, "Slug already exists", apiErr.Message)
	})

	t.Run("nested error envelope", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadRequest)
			_, _ = writer.Write([]byte(`{"error":{"message":"Invalid payload"}}`))
		}))
		defer server.Close()

		client := gatewayhttp.NewClient(server.URL, nil)

		_, err := client.Post(context.Background(), "/banners", nil)
		require.Error(t, err)

		apiErr := &catalog.Error{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Invalid payload", apiErr.Message)
	})

	t.Run("status text fallback for empty error body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := gatewayhttp.NewClient(server.URL, nil)

		_, err := client.Get(context.Background(), "/products", nil)
		require.Error(t, err)

		apiErr := &catalog.Error{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Internal Server Error", apiErr.Message)
	})

	t.Run("network error when no response", func(t *testing.T) {
		t.Parallel()

		client := gatewayhttp.NewClient("http://127.0.0.1:1", nil)

		_, err := client.Get(context.Background(), "/categories", nil)
		require.Error(t, err)
		assert.True(t, catalog.IsNetworkError(err))
	})

	t.Run("timeout surfaces as network error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		client := gatewayhttp.NewClient(server.URL, nil, gatewayhttp.WithTimeout(20*time.Millisecond))

		_, err := client.Get(context.Background(), "/categories", nil)
		require.Error(t, err)
		assert.True(t, catalog.IsNetworkError(err))
	})
}

func TestClient_UnauthorizedHook(t *testing.T) {
	t.Parallel()

	t.Run("401 triggers the hook and still rejects", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(writer).Encode(map[string]string{"message": "Token expired"})
		}))
		defer server.Close()

		handler := &recordingHandler{}
		client := gatewayhttp.NewClient(server.URL, &staticTokens{token: "stale"},
			gatewayhttp.WithUnauthorizedHandler(handler))

		_, err := client.Get(context.Background(), "/auth/me", nil)
		require.Error(t, err)
		assert.True(t, catalog.IsUnauthorized(err))
		assert.Equal(t, int64(1), handler.calls.Load())
	})

	t.Run("other errors do not trigger the hook", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		handler := &recordingHandler{}
		client := gatewayhttp.NewClient(server.URL, nil,
			gatewayhttp.WithUnauthorizedHandler(handler))

		_, err := client.Get(context.Background(), "/categories", nil)
		require.Error(t, err)
		assert.Equal(t, int64(0), handler.calls.Load())
	})
}
