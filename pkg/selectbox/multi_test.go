package selectbox_test

import (
	"context"
	"testing"

	"github.com/storekit-io/catalog-admin-client/pkg/selectbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multiFetch(items ...item) selectbox.FetchFunc[item] {
	return func(ctx context.Context, page, limit int, search string) (*selectbox.Result[item], error) {
		return &selectbox.Result[item]{Items: items, TotalPages: 1}, nil
	}
}

func TestMultiSelect_ChooseKeepsOrder(t *testing.T) {
	t.Parallel()

	var lastValues []string

	multi, err := selectbox.NewMultiSelect(itemConfig(multiFetch(
		item{ID: "1", Name: "Dairy"},
		item{ID: "2", Name: "Drinks"},
		item{ID: "3", Name: "Snacks"},
	)), func(values []string) { lastValues = values })
	require.NoError(t, err)

	defer multi.Close()

	multi.Load(context.Background())

	require.True(t, multi.Choose("2"))
	require.True(t, multi.Choose("1"))
	require.True(t, multi.Choose("3"))

	// Order is selection order, not fetch order.
	assert.Equal(t, []string{"2", "1", "3"}, multi.Values())
	assert.Equal(t, []string{"2", "1", "3"}, lastValues)
}

func TestMultiSelect_NoDuplicates(t *testing.T) {
	t.Parallel()

	changes := 0

	multi, err := selectbox.NewMultiSelect(itemConfig(multiFetch(
		item{ID: "1", Name: "Dairy"},
		item{ID: "2", Name: "Drinks"},
	)), func([]string) { changes++ })
	require.NoError(t, err)

	defer multi.Close()

	multi.Load(context.Background())

	require.True(t, multi.Choose("1"))
	assert.False(t, multi.Choose("1"))

	assert.Equal(t, []string{"1"}, multi.Values())
	assert.Equal(t, 1, changes)
}

func TestMultiSelect_RemoveThenReAddAppendsAtEnd(t *testing.T) {
	t.Parallel()

	multi, err := selectbox.NewMultiSelect(itemConfig(multiFetch(
		item{ID: "1", Name: "Dairy"},
		item{ID: "2", Name: "Drinks"},
		item{ID: "3", Name: "Snacks"},
	)), nil)
	require.NoError(t, err)

	defer multi.Close()

	multi.Load(context.Background())

	require.True(t, multi.Choose("1"))
	require.True(t, multi.Choose("2"))
	require.True(t, multi.Choose("3"))

	require.True(t, multi.Remove("1"))
	assert.Equal(t, []string{"2", "3"}, multi.Values())

	assert.False(t, multi.Remove("1"))

	// Re-adding lands at the end, not at the original position.
	require.True(t, multi.Choose("1"))
	assert.Equal(t, []string{"2", "3", "1"}, multi.Values())
}

func TestMultiSelect_OptionsExcludeSelected(t *testing.T) {
	t.Parallel()

	multi, err := selectbox.NewMultiSelect(itemConfig(multiFetch(
		item{ID: "1", Name: "Dairy"},
		item{ID: "2", Name: "Drinks"},
	)), nil)
	require.NoError(t, err)

	defer multi.Close()

	ctx := context.Background()

	multi.Load(ctx)
	require.True(t, multi.Choose("1"))

	assert.Equal(t, []selectbox.Option{{Value: "2", Label: "Drinks"}}, multi.Options())

	// Freshly fetched pages also exclude the selection.
	multi.Load(ctx)
	assert.Equal(t, []selectbox.Option{{Value: "2", Label: "Drinks"}}, multi.Options())
}

func TestMultiSelect_SetValuesBatchPreloads(t *testing.T) {
	t.Parallel()

	config := itemConfig(multiFetch())

	preloads := 0
	config.PreloadByIDs = func(ctx context.Context, ids []string) ([]item, error) {
		preloads++

		items := make([]item, 0, len(ids))

		for _, id := range ids {
			if id == "missing" {
				continue
			}

			items = append(items, item{ID: id, Name: "Item " + id})
		}

		return items, nil
	}

	changes := 0

	multi, err := selectbox.NewMultiSelect(config, func([]string) { changes++ })
	require.NoError(t, err)

	defer multi.Close()

	ctx := context.Background()

	// Unresolved ids are dropped; order follows the supplied values.
	require.NoError(t, multi.SetValues(ctx, []string{"3", "missing", "1"}))
	assert.Equal(t, []string{"3", "1"}, multi.Values())
	assert.Equal(t, 1, preloads)

	// Reconciliation never fires onChange.
	assert.Equal(t, 0, changes)

	// A non-empty selection suppresses further preloads.
	require.NoError(t, multi.SetValues(ctx, []string{"9"}))
	assert.Equal(t, 1, preloads)

	// An empty value list clears the selection.
	require.NoError(t, multi.SetValues(ctx, nil))
	assert.Empty(t, multi.Values())
}

func TestMultiSelect_SetValuesWithoutPreloader(t *testing.T) {
	t.Parallel()

	multi, err := selectbox.NewMultiSelect(itemConfig(multiFetch()), nil)
	require.NoError(t, err)

	defer multi.Close()

	// Degraded mode: no preloader means the selection stays empty.
	require.NoError(t, multi.SetValues(context.Background(), []string{"1", "2"}))
	assert.Empty(t, multi.Values())
}
