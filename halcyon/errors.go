package halcyon

import "errors"

var (
	// ErrAbsent means an input argument was nil or otherwise missing.
	ErrAbsent = errors.New("value is absent")
	// ErrInvalid means an input was present but not valid for the conversion.
	ErrInvalid = errors.New("value is invalid")
	// ErrRefused means a container rejected a mutation because of its own constraints.
	ErrRefused = errors.New("operation refused by container")
)
