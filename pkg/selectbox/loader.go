package selectbox

import (
	"context"
	"sync"
)

// loader is the pagination core shared by Select and MultiSelect. Every
// fetch carries the generation current when it started; a reload bumps
// the generation, so responses from superseded searches are detected on
// arrival and dropped.
type loader[T any] struct {
	mu     sync.Mutex
	config Config[T]

	// exclude supplements Config.ExcludeIDs; MultiSelect uses it to keep
	// already-selected values out of fetched pages.
	exclude func(value string) bool

	generation uint64
	search     string
	page       int
	options    []Option
	hasMore    bool
	loading    bool
}

// reload fetches page 1 for a new search term, discarding whatever an
// older search still has in flight.
func (l *loader[T]) reload(ctx context.Context, search string) {
	l.mu.Lock()
	l.generation++
	generation := l.generation
	l.search = search
	l.loading = true
	l.mu.Unlock()

	result, err := l.config.Fetch(ctx, 1, l.config.PageSize, search)

	l.mu.Lock()
	defer l.mu.Unlock()

	if generation != l.generation {
		// A newer search superseded this one while it was in flight.
		return
	}

	l.loading = false
	l.page = 1

	if err != nil {
		l.config.Logger.Warn("select fetch failed", map[string]interface{}{
			"search": search,
			"page":   1,
			"error":  err.Error(),
		})

		l.options = nil
		l.hasMore = false

		return
	}

	options := l.project(result.Items)
	if search == "" && len(l.config.StaticOptions) > 0 {
		options = append(append([]Option{}, l.config.StaticOptions...), options...)
	}

	l.options = options
	l.hasMore = morePages(result, 1, l.config.PageSize)
}

// loadMore fetches the next page of the current search and appends it.
func (l *loader[T]) loadMore(ctx context.Context) {
	l.mu.Lock()

	if !l.hasMore || l.loading {
		l.mu.Unlock()

		return
	}

	generation := l.generation
	search := l.search
	next := l.page + 1
	l.loading = true
	l.mu.Unlock()

	result, err := l.config.Fetch(ctx, next, l.config.PageSize, search)

	l.mu.Lock()
	defer l.mu.Unlock()

	if generation != l.generation {
		return
	}

	l.loading = false

	if err != nil {
		l.config.Logger.Warn("select fetch failed", map[string]interface{}{
			"search": search,
			"page":   next,
			"error":  err.Error(),
		})

		// Loaded pages stay usable; only further growth stops.
		l.hasMore = false

		return
	}

	l.options = append(l.options, l.project(result.Items)...)
	l.page = next
	l.hasMore = morePages(result, next, l.config.PageSize)
}

// project maps fetched items onto options, dropping excluded values.
func (l *loader[T]) project(items []T) []Option {
	options := make([]Option, 0, len(items))

	for _, item := range items {
		value := l.config.Value(item)
		if l.isExcluded(value) {
			continue
		}

		options = append(options, Option{
			Value: value,
			Label: l.config.Label(item),
		})
	}

	return options
}

func (l *loader[T]) isExcluded(value string) bool {
	for _, excluded := range l.config.ExcludeIDs {
		if value == excluded {
			return true
		}
	}

	return l.exclude != nil && l.exclude(value)
}

// snapshot returns a copy of the loaded options.
func (l *loader[T]) snapshot() []Option {
	l.mu.Lock()
	defer l.mu.Unlock()

	options := make([]Option, len(l.options))
	copy(options, l.options)

	return options
}

func (l *loader[T]) findOption(value string) (Option, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, option := range l.options {
		if option.Value == value {
			return option, true
		}
	}

	return Option{}, false
}

// HasMore reports whether another page of the current search exists.
func (l *loader[T]) HasMore() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.hasMore
}

// Loading reports whether a fetch is in flight.
func (l *loader[T]) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.loading
}

// SearchTerm returns the search term of the loaded options.
func (l *loader[T]) SearchTerm() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.search
}

func morePages[T any](result *Result[T], page, pageSize int) bool {
	if result.TotalPages > 0 {
		return page < result.TotalPages
	}

	return len(result.Items) == pageSize
}
