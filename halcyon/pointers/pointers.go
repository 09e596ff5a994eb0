package pointers

// Of returns a pointer to a copy of value.
func Of[T any](value T) *T {
	return &value
}

// FromOK returns a pointer to value when ok is true, and nil otherwise.
//
// Example:
//
//	dto.Port = pointers.FromOK(numbers.ToInt32(raw))
func FromOK[T any](value T, ok bool) *T {
	if !ok {
		return nil
	}

	return &value
}

// Value dereferences p, reporting false when p is nil.
func Value[T any](p *T) (T, bool) {
	if p == nil {
		var zero T

		return zero, false
	}

	return *p, true
}

// ValueOr dereferences p, returning fallback when p is nil.
func ValueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}

	return *p
}
