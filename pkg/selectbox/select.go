package selectbox

import (
	"context"
	"fmt"
	"sync"
)

// Select is a single-value asynchronous select. Searches are debounced
// and paginated; the chosen option lives here, not in the query cache.
type Select[T any] struct {
	loader[T]

	debouncer *Debouncer
	onChange  func(value string, selected bool)

	selMu        sync.Mutex
	selected     *Option
	preloadValue string
}

// NewSelect creates a single-value select. onChange fires synchronously
// when the user picks or clears an option, never during reconciliation.
func NewSelect[T any](config Config[T], onChange func(value string, selected bool)) (*Select[T], error) {
	err := config.validate()
	if err != nil {
		return nil, err
	}

	config.applyDefaults()

	sel := &Select[T]{
		debouncer: NewDebouncer(config.DebounceDelay),
		onChange:  onChange,
	}
	sel.loader.config = config

	return sel, nil
}

// Load immediately fetches page 1 of the current search term. Callers
// use it to populate the initial, unfiltered list.
func (s *Select[T]) Load(ctx context.Context) {
	s.reload(ctx, s.SearchTerm())
}

// Search schedules a debounced reload for the term. Rapid successive
// calls collapse into one fetch of the last term, and a response for a
// superseded term never overwrites newer state.
func (s *Select[T]) Search(ctx context.Context, term string) {
	s.debouncer.Trigger(func() {
		s.reload(ctx, term)
	})
}

// LoadMore fetches the next page of the current search and appends it.
func (s *Select[T]) LoadMore(ctx context.Context) {
	s.loadMore(ctx)
}

// Options returns the currently loaded options.
func (s *Select[T]) Options() []Option {
	return s.snapshot()
}

// Selected returns the chosen option, or nil.
func (s *Select[T]) Selected() *Option {
	s.selMu.Lock()
	defer s.selMu.Unlock()

	if s.selected == nil {
		return nil
	}

	option := *s.selected

	return &option
}

// Choose picks a loaded option by value and fires onChange. Choosing a
// value that is not among the loaded or static options is a no-op.
func (s *Select[T]) Choose(value string) bool {
	option, found := s.findOption(value)
	if !found {
		option, found = s.findStatic(value)
	}

	if !found {
		return false
	}

	s.selMu.Lock()
	s.selected = &option
	s.selMu.Unlock()

	if s.onChange != nil {
		s.onChange(option.Value, true)
	}

	return true
}

// Clear drops the selection and fires onChange.
func (s *Select[T]) Clear() {
	s.selMu.Lock()
	s.selected = nil
	s.preloadValue = ""
	s.selMu.Unlock()

	if s.onChange != nil {
		s.onChange("", false)
	}
}

// SetValue reconciles an externally-supplied value with the internal
// selection without firing onChange. An empty value clears the selection
// immediately. A value that no loaded option matches is resolved through
// the preloader when one is configured; without a preloader the control
// shows no label until the user searches and picks the option again.
func (s *Select[T]) SetValue(ctx context.Context, value string) error {
	if value == "" {
		s.selMu.Lock()
		s.selected = nil
		s.preloadValue = ""
		s.selMu.Unlock()

		return nil
	}

	s.selMu.Lock()

	if s.selected != nil && s.selected.Value == value {
		s.selMu.Unlock()

		return nil
	}

	if option, found := s.findOption(value); found {
		s.selected = &option
		s.preloadValue = ""
		s.selMu.Unlock()

		return nil
	}

	if s.config.PreloadByID == nil || s.preloadValue == value {
		s.selMu.Unlock()

		return nil
	}

	s.preloadValue = value
	s.selMu.Unlock()

	item, err := s.config.PreloadByID(ctx, value)

	s.selMu.Lock()
	defer s.selMu.Unlock()

	if s.preloadValue != value {
		// The controlled value moved on while the preload was in flight.
		return nil
	}

	s.preloadValue = ""

	if err != nil {
		return fmt.Errorf("preloading value %q: %w", value, err)
	}

	if item == nil {
		return nil
	}

	s.selected = &Option{
		Value: s.config.Value(*item),
		Label: s.config.Label(*item),
	}

	return nil
}

// Close stops the debouncer; pending searches never fire afterwards.
func (s *Select[T]) Close() {
	s.debouncer.Stop()
}

func (s *Select[T]) findStatic(value string) (Option, bool) {
	for _, option := range s.config.StaticOptions {
		if option.Value == value {
			return option, true
		}
	}

	return Option{}, false
}
