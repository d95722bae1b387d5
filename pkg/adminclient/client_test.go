package adminclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/storekit-io/catalog-admin-client/pkg/adminclient"
	"github.com/storekit-io/catalog-admin-client/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		client, err := adminclient.New(&catalog.Config{
			BaseURL: "http://localhost:3004",
		})
		require.NoError(t, err)
		assert.NotNil(t, client.API())
		assert.NotNil(t, client.Session())
	})

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := adminclient.New(nil)
		require.ErrorIs(t, err, catalog.ErrConfigRequired)
	})

	t.Run("requires base URL", func(t *testing.T) {
		t.Parallel()

		_, err := adminclient.New(&catalog.Config{})
		require.ErrorIs(t, err, catalog.ErrBaseURLRequired)
	})

	t.Run("starts anonymous", func(t *testing.T) {
		t.Parallel()

		client, err := adminclient.NewWithBaseURL("http://localhost:3004")
		require.NoError(t, err)
		assert.Equal(t, catalog.SessionAnonymous, client.Session().State())
	})
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/categories":
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"status": "success",
				"data": []map[string]interface{}{
					{"id": "c1", "name": "Dairy", "slug": "dairy", "is_active": true},
				},
				"meta": map[string]interface{}{
					"page": 1, "limit": 10, "total": 1, "total_pages": 1,
				},
			})
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := adminclient.NewWithToken(server.URL, "test-token")
	require.NoError(t, err)

	categories, err := client.API().Categories().List(context.Background(), &catalog.CategoryListParams{})
	require.NoError(t, err)
	require.Len(t, categories.Items, 1)
	assert.Equal(t, "Dairy", categories.Items[0].Name)
	assert.Equal(t, 1, categories.Meta.TotalPages)
}

func TestClientForcedLogoutOn401(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(writer).Encode(map[string]string{"message": "Token expired"})
	}))
	defer server.Close()

	client, err := adminclient.NewWithToken(server.URL, "stale-token")
	require.NoError(t, err)

	_, err = client.API().Products().Get(context.Background(), "p1")
	require.Error(t, err)
	assert.True(t, catalog.IsUnauthorized(err))

	// The gateway's 401 hook forces the session back to anonymous.
	assert.Equal(t, catalog.SessionAnonymous, client.Session().State())
}
