// Package selectbox implements the state machines behind asynchronous,
// search-driven, paginated select controls. A Select holds one chosen
// option, a MultiSelect an ordered set; both load pages on demand from a
// caller-supplied fetcher and reconcile externally-supplied values by
// preloading them.
package selectbox

import (
	"context"
	"time"

	"github.com/storekit-io/catalog-admin-client/pkg/catalog"
)

// Defaults applied when configuration leaves a field unset.
const (
	DefaultPageSize      = 10
	DefaultDebounceDelay = 300 * time.Millisecond
)

// Option is one selectable entry. Identity is the Value alone.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Result is one fetched page of items. TotalPages is zero when the
// backend did not report it; pagination then infers more pages from a
// full page.
type Result[T any] struct {
	Items      []T
	TotalPages int
}

// FetchFunc loads one page of items matching a search term.
type FetchFunc[T any] func(ctx context.Context, page, limit int, search string) (*Result[T], error)

// Config configures a Select or MultiSelect over items of type T.
type Config[T any] struct {
	// Fetch loads pages of candidate items. Required.
	Fetch FetchFunc[T]

	// PreloadByID resolves a single externally-supplied value to its item.
	// Optional; without it an unmatched value shows no label until the
	// user searches and picks it again.
	PreloadByID func(ctx context.Context, id string) (*T, error)

	// PreloadByIDs batch-resolves externally-supplied values. Optional,
	// used by MultiSelect.
	PreloadByIDs func(ctx context.Context, ids []string) ([]T, error)

	// Label and Value project an item onto its option. Both required.
	Label func(item T) string
	Value func(item T) string

	// StaticOptions are prepended to page 1 of an empty search only, so a
	// "None" sentinel appears at the top of the default list and nowhere
	// else.
	StaticOptions []Option

	// ExcludeIDs removes items from fetched pages before they become
	// options. Used to keep a record from being offered as its own
	// parent.
	ExcludeIDs []string

	// PageSize is the fetch page size. Defaults to 10.
	PageSize int

	// DebounceDelay gates search-triggered fetches. Defaults to 300ms.
	DebounceDelay time.Duration

	// Logger is optional; fetch failures are logged, never raised.
	Logger catalog.Logger
}

func (c *Config[T]) validate() error {
	if c.Fetch == nil {
		return catalog.ErrFetcherRequired
	}

	if c.Label == nil || c.Value == nil {
		return catalog.ErrProjectionsRequired
	}

	return nil
}

func (c *Config[T]) applyDefaults() {
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}

	if c.DebounceDelay <= 0 {
		c.DebounceDelay = DefaultDebounceDelay
	}

	if c.Logger == nil {
		c.Logger = catalog.NoopLogger{}
	}
}
