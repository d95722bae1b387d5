package querycache

import (
	"context"

	"github.com/storekit-io/catalog-admin-client/pkg/catalog"
)

// DefaultErrorMessage is shown when a failed mutation carries no
// server-provided message.
const DefaultErrorMessage = "Something went wrong. Please try again."

// Mutation describes the side effects of a write operation: which
// resource families it invalidates and what to tell the user.
type Mutation struct {
	// Invalidates lists the resource families whose cached queries become
	// stale when the mutation succeeds.
	Invalidates []string

	// SuccessMessage is emitted through the notifier on success. Empty
	// suppresses the notification.
	SuccessMessage string

	// ErrorMessage overrides the default fallback shown when the error
	// carries no message of its own.
	ErrorMessage string
}

// Mutate runs a write operation with the mutation's side effects. On
// success the listed resource families are invalidated before Mutate
// returns, so a caller that immediately refetches sees fresh data. On
// failure nothing is invalidated and the error notification carries the
// server's message when one exists.
func Mutate[T any](ctx context.Context, c *Cache, mutation Mutation, op func(context.Context) (*T, error)) (*T, error) {
	if op == nil {
		return nil, ErrMutationFuncRequired
	}

	value, err := op(ctx)
	if err != nil {
		fallback := mutation.ErrorMessage
		if fallback == "" {
			fallback = DefaultErrorMessage
		}

		c.notifier.Error(catalog.ErrorMessage(err, fallback))

		return nil, err
	}

	c.Invalidate(ctx, mutation.Invalidates...)

	if mutation.SuccessMessage != "" {
		c.notifier.Success(mutation.SuccessMessage)
	}

	return value, nil
}

// MutateNoResult runs a write operation that returns no payload, such as
// a delete, with the same side effects as Mutate.
func MutateNoResult(ctx context.Context, c *Cache, mutation Mutation, op func(context.Context) error) error {
	if op == nil {
		return ErrMutationFuncRequired
	}

	_, err := Mutate(ctx, c, mutation, func(ctx context.Context) (*struct{}, error) {
		err := op(ctx)
		if err != nil {
			return nil, err
		}

		return &struct{}{}, nil
	})

	return err
}
