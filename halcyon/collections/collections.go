package collections

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/therobotinitiative/Halcyon/halcyon"
	"github.com/therobotinitiative/Halcyon/halcyon/internal/nilcheck"
)

// Collection is a container with a deterministic iteration order.
// The first value yielded by All is the value PopFirst and PeekFirst select.
type Collection[T any] interface {
	Len() int
	All() iter.Seq[T]
	Remove(value T) bool
}

// Adder is a container that accepts insertions. A non-nil error from Add means the
// container refused the value and was left unchanged.
type Adder[T any] interface {
	Add(value T) error
}

// PushFront inserts value at index 0 of the slice seq points to.
// It is a no-op when seq is nil or value is absent. The slice is never sorted.
//
// Example:
//
//	history := []string{"b", "c"}
//	collections.PushFront(&history, "a") // history == [a b c]
func PushFront[T any](seq *[]T, value T) {
	if seq == nil || nilcheck.Absent(value) {
		return
	}

	*seq = slices.Insert(*seq, 0, value)
}

// PeekFirst returns the first value of c in iteration order without removing it.
// It returns false when c is absent or empty.
func PeekFirst[T any](c Collection[T]) (T, bool) {
	var zero T

	if nilcheck.Interface(c) || c.Len() == 0 {
		return zero, false
	}

	values := c.All()
	if values == nil {
		return zero, false
	}

	for value := range values {
		return value, true
	}

	return zero, false
}

// PopFirst removes and returns the first value of c in iteration order.
// It returns false when c is absent or empty.
func PopFirst[T any](c Collection[T]) (T, bool) {
	value, ok := PeekFirst(c)
	if !ok {
		return value, false
	}

	c.Remove(value)

	return value, true
}

// PeekSlice returns the element at index 0 of seq, or false when seq is empty.
func PeekSlice[T any](seq []T) (T, bool) {
	var zero T

	if len(seq) == 0 {
		return zero, false
	}

	return seq[0], true
}

// PopSlice removes and returns the element at index 0 of the slice seq points to.
// It returns false when seq is nil or the slice is empty.
func PopSlice[T any](seq *[]T) (T, bool) {
	var zero T

	if seq == nil || len(*seq) == 0 {
		return zero, false
	}

	value := (*seq)[0]
	*seq = slices.Delete(*seq, 0, 1)

	return value, true
}

// AddIfPossible adds value to c when both are present.
// A refusal from the container is swallowed and the call becomes a no-op.
func AddIfPossible[T any](c Adder[T], value T) {
	_ = add(c, value)
}

// AddIfPossibleContext behaves like AddIfPossible and reports a swallowed failure at
// debug level through the logger carried by ctx.
func AddIfPossibleContext[T any](ctx context.Context, c Adder[T], value T) {
	halcyon.LogSwallowed(ctx, "collections.AddIfPossible", add(c, value))
}

func add[T any](c Adder[T], value T) error {
	if nilcheck.Interface(c) {
		return fmt.Errorf("%w: nil container", halcyon.ErrAbsent)
	}

	if nilcheck.Absent(value) {
		return fmt.Errorf("%w: nil value", halcyon.ErrAbsent)
	}

	if err := c.Add(value); err != nil {
		if errors.Is(err, halcyon.ErrRefused) {
			return err
		}

		return fmt.Errorf("%w: %w", halcyon.ErrRefused, err)
	}

	return nil
}
