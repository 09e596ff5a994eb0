// Package textual computes the textual form shared by the parsing helpers.
package textual

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/therobotinitiative/Halcyon/halcyon/internal/nilcheck"
)

// Form returns the textual form of value. It returns false when value is absent.
//
// Stringer and error implementations win over the underlying kind, and non-nil
// pointers to plain values are dereferenced so *int reads as its number.
func Form(value any) (string, bool) {
	if nilcheck.Interface(value) {
		return "", false
	}

	switch t := value.(type) {
	case string:
		return t, true
	case []byte:
		return string(t), true
	case fmt.Stringer:
		return t.String(), true
	case error:
		return t.Error(), true
	case bool:
		return strconv.FormatBool(t), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32), true
	}

	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Pointer {
		return Form(v.Elem().Interface())
	}

	return fmt.Sprint(value), true
}
