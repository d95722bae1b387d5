package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/storekit-io/catalog-admin-client/internal/client"
	internalhttp "github.com/storekit-io/catalog-admin-client/internal/http"
	"github.com/storekit-io/catalog-admin-client/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient starts a server that records each request and answers with
// the given body.
func newTestClient(t *testing.T, status int, body string) (*client.Client, *recorder) {
	t.Helper()

	rec := &recorder{}
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		rec.method = request.Method
		rec.path = request.URL.Path
		rec.query = request.URL.RawQuery
		_ = json.NewDecoder(request.Body).Decode(&rec.body)

		writer.WriteHeader(status)
		_, _ = writer.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	gateway := internalhttp.NewClient(server.URL, nil)

	return client.New(gateway), rec
}

type recorder struct {
	method string
	path   string
	query  string
	body   map[string]interface{}
}

func envelope(t *testing.T, data interface{}) string {
	t.Helper()

	encoded, err := json.Marshal(map[string]interface{}{"status": "success", "data": data})
	require.NoError(t, err)

	return string(encoded)
}

func TestCategoriesClient(t *testing.T) {
	t.Parallel()

	t.Run("list with params", func(t *testing.T) {
		t.Parallel()

		api, rec := newTestClient(t, 200, envelope(t, []catalog.Category{{ID: "cat-1", Name: "Dairy"}}))

		params := &catalog.CategoryListParams{
			ListParams: catalog.ListParams{Page: 2, Limit: 20, Search: "dai"},
			ParentID:   "root",
		}

		list, err := api.Categories().List(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, "GET", rec.method)
		assert.Equal(t, "/categories", rec.path)
		assert.Contains(t, rec.query, "page=2")
		assert.Contains(t, rec.query, "search=dai")
		assert.Contains(t, rec.query, "parent_id=root")
		require.Len(t, list.Items, 1)
		assert.Equal(t, "Dairy", list.Items[0].Name)
	})

	t.Run("list accepts a bare array", func(t *testing.T) {
		t.Parallel()

		api, _ := newTestClient(t, 200, `[{"id":"cat-1","name":"Dairy"},{"id":"cat-2","name":"Bakery"}]`)

		list, err := api.Categories().List(context.Background(), nil)
		require.NoError(t, err)
		assert.Len(t, list.Items, 2)
		assert.Nil(t, list.Meta)
	})

	t.Run("update uses the update path", func(t *testing.T) {
		t.Parallel()

		api, rec := newTestClient(t, 200, envelope(t, catalog.Category{ID: "cat-1"}))

		request := &catalog.CategoryUpdateRequest{Name: "Dairy & Eggs"}
		_, err := api.Categories().Update(context.Background(), "cat-1", request)
		require.NoError(t, err)
		assert.Equal(t, "PUT", rec.method)
		assert.Equal(t, "/categories/update/cat-1", rec.path)
	})

	t.Run("delete is a PATCH to the delete path", func(t *testing.T) {
		t.Parallel()

		api, rec := newTestClient(t, 200, envelope(t, catalog.Category{ID: "cat-1"}))

		err := api.Categories().Delete(context.Background(), "cat-1")
		require.NoError(t, err)
		assert.Equal(t, "PATCH", rec.method)
		assert.Equal(t, "/categories/delete/cat-1", rec.path)
	})

	t.Run("create validates before sending", func(t *testing.T) {
		t.Parallel()

		api, rec := newTestClient(t, 200, envelope(t, catalog.Category{}))

		_, err := api.Categories().Create(context.Background(), &catalog.CategoryCreateRequest{Slug: "dairy"})
		require.Error(t, err)
		assert.True(t, catalog.IsValidationError(err))
		// Nothing reached the server.
		assert.Empty(t, rec.method)
	})
}

func TestProductsClient(t *testing.T) {
	t.Parallel()

	t.Run("status toggle uses PATCH", func(t *testing.T) {
		t.Parallel()

		api, rec := newTestClient(t, 200, envelope(t, catalog.Product{ID: "prod-1", IsActive: false}))

		product, err := api.Products().SetActive(context.Background(), "prod-1", false)
		require.NoError(t, err)
		assert.Equal(t, "PATCH", rec.method)
		assert.Equal(t, "/products/status/prod-1", rec.path)
		assert.Equal(t, false, rec.body["is_active"])
		assert.False(t, product.IsActive)
	})

	t.Run("delete uses DELETE", func(t *testing.T) {
		t.Parallel()

		api, rec := newTestClient(t, 200, envelope(t, catalog.Product{}))

		err := api.Products().Delete(context.Background(), "prod-1")
		require.NoError(t, err)
		assert.Equal(t, "DELETE", rec.method)
		assert.Equal(t, "/products/prod-1", rec.path)
	})
}

func TestVariantsClient(t *testing.T) {
	t.Parallel()

	t.Run("list scoped to a product", func(t *testing.T) {
		t.Parallel()

		api, rec := newTestClient(t, 200, envelope(t, []catalog.Variant{}))

		params := &catalog.VariantListParams{ProductID: "prod-1"}
		_, err := api.Variants().List(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, "/variants", rec.path)
		assert.Contains(t, rec.query, "product_id=prod-1")
	})

	t.Run("update and delete use id-first paths", func(t *testing.T) {
		t.Parallel()

		api, rec := newTestClient(t, 200, envelope(t, catalog.Variant{ID: "var-1", Price: "12.50"}))

		_, err := api.Variants().Update(context.Background(), "var-1", &catalog.VariantUpdateRequest{Name: "Large"})
		require.NoError(t, err)
		assert.Equal(t, "PATCH", rec.method)
		assert.Equal(t, "/variants/var-1/update", rec.path)

		err = api.Variants().Delete(context.Background(), "var-1")
		require.NoError(t, err)
		assert.Equal(t, "PATCH", rec.method)
		assert.Equal(t, "/variants/var-1/delete", rec.path)
	})

	t.Run("create rejects a non-positive price", func(t *testing.T) {
		t.Parallel()

		api, rec := newTestClient(t, 200, envelope(t, catalog.Variant{Price: "0"}))

		request := &catalog.VariantCreateRequest{Name: "Small", Price: 0, ProductID: "prod-1"}
		_, err := api.Variants().Create(context.Background(), request)
		require.Error(t, err)
		assert.True(t, catalog.IsValidationError(err))
		assert.Empty(t, rec.method)
	})
}

func TestBannersClient(t *testing.T) {
	t.Parallel()

	t.Run("status toggle rides the update path", func(t *testing.T) {
		t.Parallel()

		api, rec := newTestClient(t, 200, envelope(t, catalog.Banner{ID: "ban-1", IsActive: true}))

		_, err := api.Banners().SetActive(context.Background(), "ban-1", true)
		require.NoError(t, err)
		assert.Equal(t, "PUT", rec.method)
		assert.Equal(t, "/banners/update/ban-1", rec.path)
		assert.Equal(t, true, rec.body["is_active"])
	})
}

func TestAuthClient(t *testing.T) {
	t.Parallel()

	t.Run("request OTP posts the phone", func(t *testing.T) {
		t.Parallel()

		api, rec := newTestClient(t, 200, `{"status":"success","message":"OTP sent","otp":"123456"}`)

		result, err := api.Auth().RequestOTP(context.Background(), "+15551234567")
		require.NoError(t, err)
		assert.Equal(t, "POST", rec.method)
		assert.Equal(t, "/auth/login", rec.path)
		assert.Equal(t, "+15551234567", rec.body["phone"])
		assert.Equal(t, "123456", result.OTP)
	})

	t.Run("request OTP requires a phone", func(t *testing.T) {
		t.Parallel()

		api, rec := newTestClient(t, 200, `{}`)

		_, err := api.Auth().RequestOTP(context.Background(), "")
		require.Error(t, err)
		assert.True(t, catalog.IsValidationError(err))
		assert.Empty(t, rec.method)
	})

	t.Run("verify OTP decodes the credential payload", func(t *testing.T) {
		t.Parallel()

		api, rec := newTestClient(t, 200,
			`{"status":"success","token":"access","refresh_token":"refresh","user":{"id":"user-1","role":"ADMIN"}}`)

		result, err := api.Auth().VerifyOTP(context.Background(), "+15551234567", "123456")
		require.NoError(t, err)
		assert.Equal(t, "/auth/verify", rec.path)
		assert.Equal(t, "123456", rec.body["otp"])
		assert.Equal(t, "access", result.Token)
		assert.Equal(t, "user-1", result.User.ID)
	})

	t.Run("me unwraps the data envelope", func(t *testing.T) {
		t.Parallel()

		api, rec := newTestClient(t, 200, envelope(t, catalog.User{ID: "user-1", Role: "ADMIN"}))

		user, err := api.Auth().Me(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/auth/me", rec.path)
		assert.Equal(t, "ADMIN", user.Role)
	})
}
