package catalog_test

import (
	"testing"

	"github.com/storekit-io/catalog-admin-client/pkg/catalog"
	"github.com/stretchr/testify/assert"
)

func TestListParams_ToValues(t *testing.T) {
	t.Parallel()

	t.Run("zero values are omitted", func(t *testing.T) {
		t.Parallel()

		params := &catalog.ListParams{}
		assert.Empty(t, params.ToValues())
	})

	t.Run("nil receiver is safe", func(t *testing.T) {
		t.Parallel()

		var params *catalog.ListParams

		assert.Empty(t, params.ToValues())
		assert.Empty(t, params.FilterMap())
	})

	t.Run("all fields", func(t *testing.T) {
		t.Parallel()

		params := &catalog.ListParams{
			Page:      2,
			Limit:     25,
			Search:    "milk",
			SortBy:    "name",
			SortOrder: "asc",
		}

		values := params.ToValues()
		assert.Equal(t, "2", values.Get("page"))
		assert.Equal(t, "25", values.Get("limit"))
		assert.Equal(t, "milk", values.Get("search"))
		assert.Equal(t, "name", values.Get("sortBy"))
		assert.Equal(t, "asc", values.Get("sortOrder"))
	})
}

func TestListParams_FilterMap(t *testing.T) {
	t.Parallel()

	params := &catalog.ListParams{Page: 3, Search: "bread"}

	filters := params.FilterMap()
	assert.Equal(t, map[string]string{"page": "3", "search": "bread"}, filters)
}

func TestCategoryListParams_ToValues(t *testing.T) {
	t.Parallel()

	active := false
	params := &catalog.CategoryListParams{
		ListParams: catalog.ListParams{Page: 1},
		IsActive:   &active,
		ParentID:   "root",
	}

	values := params.ToValues()
	assert.Equal(t, "1", values.Get("page"))
	assert.Equal(t, "false", values.Get("is_active"))
	assert.Equal(t, "root", values.Get("parent_id"))
}

func TestVariantListParams_ToValues(t *testing.T) {
	t.Parallel()

	params := &catalog.VariantListParams{ProductID: "prod-1"}
	assert.Equal(t, "prod-1", params.ToValues().Get("product_id"))
}
