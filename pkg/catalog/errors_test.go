package catalog_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/storekit-io/catalog-admin-client/pkg/catalog"
	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	t.Run("unauthorized", func(t *testing.T) {
		t.Parallel()

		err := catalog.NewServerError(401, "Unauthorized")
		assert.True(t, catalog.IsUnauthorized(err))
		assert.False(t, catalog.IsNotFound(err))
		assert.False(t, catalog.IsNetworkError(err))
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		err := catalog.NewServerError(404, "Category not found")
		assert.True(t, catalog.IsNotFound(err))
		assert.False(t, catalog.IsUnauthorized(err))
	})

	t.Run("network", func(t *testing.T) {
		t.Parallel()

		err := catalog.NewNetworkError()
		assert.True(t, catalog.IsNetworkError(err))
		assert.False(t, catalog.IsUnauthorized(err))
	})

	t.Run("validation", func(t *testing.T) {
		t.Parallel()

		err := catalog.NewValidationError("name", "Name is required")
		assert.True(t, catalog.IsValidationError(err))
		assert.Equal(t, "name", err.Details["field"])
	})

	t.Run("wrapped errors still classify", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("listing categories: %w", catalog.NewServerError(401, "Unauthorized"))
		assert.True(t, catalog.IsUnauthorized(err))
	})

	t.Run("plain errors classify as nothing", func(t *testing.T) {
		t.Parallel()

		err := errors.New("boom")
		assert.False(t, catalog.IsUnauthorized(err))
		assert.False(t, catalog.IsNetworkError(err))
		assert.False(t, catalog.IsValidationError(err))
	})
}

func TestError_Error(t *testing.T) {
	t.Parallel()

	withStatus := catalog.NewServerError(500, "boom")
	assert.Equal(t, "SERVER_ERROR: boom (status: 500)", withStatus.Error())

	withoutStatus := catalog.NewNetworkError()
	assert.Equal(t, "NETWORK_ERROR: No response from server. Please check your connection.", withoutStatus.Error())
}

func TestNewServerError_DefaultMessage(t *testing.T) {
	t.Parallel()

	err := catalog.NewServerError(500, "")
	assert.Equal(t, "An error occurred", err.Message)
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Slug already exists",
		catalog.ErrorMessage(catalog.NewServerError(422, "Slug already exists"), "Failed to save"))

	assert.Equal(t, "Failed to save",
		catalog.ErrorMessage(errors.New("boom"), "Failed to save"))

	wrapped := fmt.Errorf("creating category: %w", catalog.NewServerError(422, "Slug already exists"))
	assert.Equal(t, "Slug already exists", catalog.ErrorMessage(wrapped, "Failed to save"))
}
