package selectbox

import (
	"context"
	"fmt"
	"sync"
)

// MultiSelect is a multi-value asynchronous select. Selected options form
// an ordered sequence in user selection order, with values as set keys:
// duplicates are impossible and fetched pages exclude what is already
// selected.
type MultiSelect[T any] struct {
	loader[T]

	debouncer *Debouncer
	onChange  func(values []string)

	selMu    sync.Mutex
	selected []Option
}

// NewMultiSelect creates a multi-value select. onChange receives the full
// ordered value list after every user-driven change.
func NewMultiSelect[T any](config Config[T], onChange func(values []string)) (*MultiSelect[T], error) {
	err := config.validate()
	if err != nil {
		return nil, err
	}

	config.applyDefaults()

	multi := &MultiSelect[T]{
		debouncer: NewDebouncer(config.DebounceDelay),
		onChange:  onChange,
	}
	multi.loader.config = config
	multi.loader.exclude = multi.isSelected

	return multi, nil
}

// Load immediately fetches page 1 of the current search term.
func (m *MultiSelect[T]) Load(ctx context.Context) {
	m.reload(ctx, m.SearchTerm())
}

// Search schedules a debounced reload for the term.
func (m *MultiSelect[T]) Search(ctx context.Context, term string) {
	m.debouncer.Trigger(func() {
		m.reload(ctx, term)
	})
}

// LoadMore fetches the next page of the current search and appends it.
func (m *MultiSelect[T]) LoadMore(ctx context.Context) {
	m.loadMore(ctx)
}

// Options returns the loaded options with already-selected values
// filtered out, so a selection never reappears in the dropdown.
func (m *MultiSelect[T]) Options() []Option {
	loaded := m.snapshot()

	options := make([]Option, 0, len(loaded))

	for _, option := range loaded {
		if !m.isSelected(option.Value) {
			options = append(options, option)
		}
	}

	return options
}

// Selected returns the selected options in selection order.
func (m *MultiSelect[T]) Selected() []Option {
	m.selMu.Lock()
	defer m.selMu.Unlock()

	selected := make([]Option, len(m.selected))
	copy(selected, m.selected)

	return selected
}

// Values returns the selected values in selection order.
func (m *MultiSelect[T]) Values() []string {
	m.selMu.Lock()
	defer m.selMu.Unlock()

	return m.values()
}

// Choose appends a loaded option to the selection and fires onChange.
// Choosing an already-selected value is a no-op, as is a value not among
// the loaded or static options.
func (m *MultiSelect[T]) Choose(value string) bool {
	option, found := m.findOption(value)
	if !found {
		option, found = m.findStatic(value)
	}

	if !found {
		return false
	}

	m.selMu.Lock()

	if m.containsLocked(value) {
		m.selMu.Unlock()

		return false
	}

	m.selected = append(m.selected, option)
	values := m.values()
	m.selMu.Unlock()

	if m.onChange != nil {
		m.onChange(values)
	}

	return true
}

// Remove drops one selected value, preserving the relative order of the
// remaining selections, and fires onChange.
func (m *MultiSelect[T]) Remove(value string) bool {
	m.selMu.Lock()

	index := -1

	for i, option := range m.selected {
		if option.Value == value {
			index = i

			break
		}
	}

	if index < 0 {
		m.selMu.Unlock()

		return false
	}

	m.selected = append(m.selected[:index], m.selected[index+1:]...)
	values := m.values()
	m.selMu.Unlock()

	if m.onChange != nil {
		m.onChange(values)
	}

	return true
}

// SetValues reconciles an externally-supplied value list without firing
// onChange. An empty list clears the selection. A non-empty list is
// batch-preloaded only when nothing is selected yet; without a batch
// preloader the selection stays empty until the user re-picks, a
// degraded mode rather than an error.
func (m *MultiSelect[T]) SetValues(ctx context.Context, values []string) error {
	if len(values) == 0 {
		m.selMu.Lock()
		m.selected = nil
		m.selMu.Unlock()

		return nil
	}

	m.selMu.Lock()
	empty := len(m.selected) == 0
	m.selMu.Unlock()

	if !empty || m.config.PreloadByIDs == nil {
		return nil
	}

	items, err := m.config.PreloadByIDs(ctx, values)
	if err != nil {
		return fmt.Errorf("preloading values: %w", err)
	}

	byValue := make(map[string]Option, len(items))
	for _, item := range items {
		byValue[m.config.Value(item)] = Option{
			Value: m.config.Value(item),
			Label: m.config.Label(item),
		}
	}

	// Selection order follows the supplied value order; values the
	// preloader did not resolve are dropped.
	selected := make([]Option, 0, len(values))

	for _, value := range values {
		if option, ok := byValue[value]; ok {
			selected = append(selected, option)
		}
	}

	m.selMu.Lock()

	if len(m.selected) == 0 {
		m.selected = selected
	}

	m.selMu.Unlock()

	return nil
}

// Close stops the debouncer; pending searches never fire afterwards.
func (m *MultiSelect[T]) Close() {
	m.debouncer.Stop()
}

func (m *MultiSelect[T]) isSelected(value string) bool {
	m.selMu.Lock()
	defer m.selMu.Unlock()

	return m.containsLocked(value)
}

func (m *MultiSelect[T]) containsLocked(value string) bool {
	for _, option := range m.selected {
		if option.Value == value {
			return true
		}
	}

	return false
}

func (m *MultiSelect[T]) values() []string {
	values := make([]string, len(m.selected))
	for i, option := range m.selected {
		values[i] = option.Value
	}

	return values
}

func (m *MultiSelect[T]) findStatic(value string) (Option, bool) {
	for _, option := range m.config.StaticOptions {
		if option.Value == value {
			return option, true
		}
	}

	return Option{}, false
}
