package querycache_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/storekit-io/catalog-admin-client/pkg/catalog"
	"github.com/storekit-io/catalog-admin-client/pkg/querycache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, message)
}

func TestKey_String(t *testing.T) {
	t.Parallel()

	key1 := querycache.NewKey("categories", nil)
	assert.Equal(t, "categories", key1.String())

	key2 := querycache.NewKey("categories", map[string]string{"page": "1", "limit": "10"})
	assert.Equal(t, "categories:limit=10,page=1", key2.String())

	// Parameter order must not matter.
	key3 := querycache.NewKey("categories", map[string]string{"limit": "10", "page": "1"})
	assert.Equal(t, key2.String(), key3.String())
}

func TestQuery_CachesResult(t *testing.T) {
	t.Parallel()

	cache := querycache.New(nil)
	ctx := context.Background()
	key := querycache.NewKey("categories", map[string]string{"page": "1"})

	var fetches atomic.Int64

	fetch := func(ctx context.Context) (*[]string, error) {
		fetches.Add(1)

		return &[]string{"drinks", "snacks"}, nil
	}

	first, err := querycache.Query(ctx, cache, key, fetch)
	require.NoError(t, err)
	assert.Equal(t, []string{"drinks", "snacks"}, *first)

	second, err := querycache.Query(ctx, cache, key, fetch)
	require.NoError(t, err)
	assert.Equal(t, *first, *second)

	assert.Equal(t, int64(1), fetches.Load())

	stats := cache.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(1), stats.Sets)
}

func TestQuery_DeduplicatesConcurrentFetches(t *testing.T) {
	t.Parallel()

	cache := querycache.New(nil)
	ctx := context.Background()
	key := querycache.NewKey("products", map[string]string{"search": "cola"})

	var fetches atomic.Int64

	started := make(chan struct{})
	release := make(chan struct{})

	fetch := func(ctx context.Context) (*[]string, error) {
		fetches.Add(1)
		close(started)
		<-release

		return &[]string{"cola zero"}, nil
	}

	var waitGroup sync.WaitGroup

	results := make([]*[]string, 5)
	errs := make([]error, 5)

	waitGroup.Add(1)

	go func() {
		defer waitGroup.Done()

		results[0], errs[0] = querycache.Query(ctx, cache, key, fetch)
	}()

	<-started

	for i := 1; i < 5; i++ {
		i := i

		waitGroup.Add(1)

		go func() {
			defer waitGroup.Done()

			results[i], errs[i] = querycache.Query(ctx, cache, key, func(ctx context.Context) (*[]string, error) {
				fetches.Add(1)

				return &[]string{"should not run"}, nil
			})
		}()
	}

	// Give the joiners time to attach to the in-flight fetch.
	for cache.GetStats().Shared < 4 {
		time.Sleep(time.Millisecond)
	}

	close(release)
	waitGroup.Wait()

	assert.Equal(t, int64(1), fetches.Load())

	for i := 0; i < 5; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, []string{"cola zero"}, *results[i])
	}
}

func TestQuery_ErrorNotCached(t *testing.T) {
	t.Parallel()

	cache := querycache.New(nil)
	ctx := context.Background()
	key := querycache.NewKey("banners", nil)

	var fetches atomic.Int64

	_, err := querycache.Query(ctx, cache, key, func(ctx context.Context) (*[]string, error) {
		fetches.Add(1)

		return nil, catalog.NewNetworkError()
	})
	require.Error(t, err)
	assert.True(t, catalog.IsNetworkError(err))

	// The failure must not be served from cache; the next access refetches
	// and can succeed.
	value, err := querycache.Query(ctx, cache, key, func(ctx context.Context) (*[]string, error) {
		fetches.Add(1)

		return &[]string{"summer sale"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"summer sale"}, *value)
	assert.Equal(t, int64(2), fetches.Load())
}

func TestMutate_InvalidatesBeforeReturning(t *testing.T) {
	t.Parallel()

	notifier := &recordingNotifier{}
	cache := querycache.New(nil, querycache.WithNotifier(notifier))
	ctx := context.Background()

	listKey := querycache.NewKey("categories", map[string]string{"page": "1"})

	var fetches atomic.Int64

	fetch := func(ctx context.Context) (*[]string, error) {
		fetches.Add(1)

		return &[]string{"drinks"}, nil
	}

	_, err := querycache.Query(ctx, cache, listKey, fetch)
	require.NoError(t, err)
	assert.Equal(t, int64(1), fetches.Load())

	created, err := querycache.Mutate(ctx, cache, querycache.Mutation{
		Invalidates:    []string{"categories"},
		SuccessMessage: "Category created",
	}, func(ctx context.Context) (*string, error) {
		name := "snacks"

		return &name, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "snacks", *created)

	// Invalidation happened synchronously: the very next query refetches.
	_, err = querycache.Query(ctx, cache, listKey, fetch)
	require.NoError(t, err)
	assert.Equal(t, int64(2), fetches.Load())

	assert.Equal(t, []string{"Category created"}, notifier.successes)
	assert.Empty(t, notifier.errors)
}

func TestMutate_InvalidatesWholeFamily(t *testing.T) {
	t.Parallel()

	cache := querycache.New(nil)
	ctx := context.Background()

	var fetches atomic.Int64

	fetch := func(ctx context.Context) (*string, error) {
		fetches.Add(1)

		value := "data"

		return &value, nil
	}

	keys := []querycache.Key{
		querycache.NewKey("products", nil),
		querycache.NewKey("products", map[string]string{"page": "1"}),
		querycache.NewKey("products", map[string]string{"page": "2", "search": "cola"}),
	}
	for _, key := range keys {
		_, err := querycache.Query(ctx, cache, key, fetch)
		require.NoError(t, err)
	}

	categoryKey := querycache.NewKey("categories", nil)
	_, err := querycache.Query(ctx, cache, categoryKey, fetch)
	require.NoError(t, err)

	assert.Equal(t, int64(4), fetches.Load())

	err = querycache.MutateNoResult(ctx, cache, querycache.Mutation{
		Invalidates: []string{"products"},
	}, func(ctx context.Context) error {
		return nil
	})
	require.NoError(t, err)

	// All product queries refetch, the category query is untouched.
	for _, key := range keys {
		_, err := querycache.Query(ctx, cache, key, fetch)
		require.NoError(t, err)
	}

	_, err = querycache.Query(ctx, cache, categoryKey, fetch)
	require.NoError(t, err)

	assert.Equal(t, int64(7), fetches.Load())
}

func TestMutate_ErrorKeepsCacheAndNotifies(t *testing.T) {
	t.Parallel()

	notifier := &recordingNotifier{}
	cache := querycache.New(nil, querycache.WithNotifier(notifier))
	ctx := context.Background()

	key := querycache.NewKey("variants", map[string]string{"product_id": "p1"})

	var fetches atomic.Int64

	fetch := func(ctx context.Context) (*string, error) {
		fetches.Add(1)

		value := "variants"

		return &value, nil
	}

	_, err := querycache.Query(ctx, cache, key, fetch)
	require.NoError(t, err)

	_, err = querycache.Mutate(ctx, cache, querycache.Mutation{
		Invalidates:    []string{"variants"},
		SuccessMessage: "Variant updated",
	}, func(ctx context.Context) (*string, error) {
		return nil, catalog.NewServerError(422, "Price must be positive")
	})
	require.Error(t, err)

	// Failed mutations invalidate nothing.
	_, err = querycache.Query(ctx, cache, key, fetch)
	require.NoError(t, err)
	assert.Equal(t, int64(1), fetches.Load())

	assert.Empty(t, notifier.successes)
	assert.Equal(t, []string{"Price must be positive"}, notifier.errors)
}

func TestMutate_ErrorFallbackMessage(t *testing.T) {
	t.Parallel()

	notifier := &recordingNotifier{}
	cache := querycache.New(nil, querycache.WithNotifier(notifier))

	_, err := querycache.Mutate(context.Background(), cache, querycache.Mutation{
		ErrorMessage: "Could not save the banner",
	}, func(ctx context.Context) (*string, error) {
		return nil, assert.AnError
	})
	require.Error(t, err)
	assert.Equal(t, []string{"Could not save the banner"}, notifier.errors)
}

func TestStats_GetHitRate(t *testing.T) {
	t.Parallel()

	stats := &querycache.Stats{
		Hits:   75,
		Misses: 25,
	}

	assert.InDelta(t, 0.75, stats.GetHitRate(), 0.0001)

	emptyStats := &querycache.Stats{}
	assert.InDelta(t, 0.0, emptyStats.GetHitRate(), 0.0001)
}
