// Package nilcheck decides whether a value counts as absent.
package nilcheck

import "reflect"

// Interface reports whether value is nil, including typed-nil interfaces.
func Interface(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)

	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}

// Absent is the generic form of Interface. Value types are never absent.
func Absent[T any](value T) bool {
	return Interface(any(value))
}
