package text

import (
	"fmt"

	"github.com/therobotinitiative/Halcyon/halcyon/internal/textual"
)

// Stringify returns the textual form of value.
// It returns false when value is absent or its textual form is empty.
//
// The textual form of a fmt.Stringer is its String result, of an error its Error
// result, and of a non-nil pointer to a plain value the form of the pointee.
func Stringify(value any) (string, bool) {
	s, ok := textual.Form(value)
	if !ok || s == "" {
		return "", false
	}

	return s, true
}

// StringOf is Stringify bounded to types exposing a String method. A nil pointer
// receiver counts as absent and String is not called on it.
func StringOf[T fmt.Stringer](value T) (string, bool) {
	return Stringify(value)
}
