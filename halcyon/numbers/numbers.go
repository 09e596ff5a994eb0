package numbers

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/therobotinitiative/Halcyon/halcyon"
	"github.com/therobotinitiative/Halcyon/halcyon/internal/textual"
	"golang.org/x/exp/constraints"
)

// Number is any type the parsers produce: signed integers and floats.
type Number interface {
	constraints.Signed | constraints.Float
}

var (
	errNotANumber  = errors.New("not a number")
	errOutOfRange  = errors.New("out of range")
	errNotFinite   = errors.New("not a finite number")
	errUnsupported = errors.New("unsupported numeric kind")
)

// To converts the textual form of value into N.
// It returns false when value is absent, not a number, or overflows N.
func To[N Number](value any) (N, bool) {
	n, err := parse[N](value)

	return n, err == nil
}

// ToContext behaves like To and reports a swallowed failure at debug level through
// the logger carried by ctx.
func ToContext[N Number](ctx context.Context, value any) (N, bool) {
	n, err := parse[N](value)
	if err != nil {
		halcyon.LogSwallowed(ctx, "numbers.To", err)

		return n, false
	}

	return n, true
}

// ToInt8 converts the textual form of value into an int8.
func ToInt8(value any) (int8, bool) { return To[int8](value) }

// ToInt16 converts the textual form of value into an int16.
func ToInt16(value any) (int16, bool) { return To[int16](value) }

// ToInt32 converts the textual form of value into an int32.
func ToInt32(value any) (int32, bool) { return To[int32](value) }

// ToInteger is ToInt32 under the name of the 32-bit integer type.
func ToInteger(value any) (int32, bool) { return To[int32](value) }

// ToInt64 converts the textual form of value into an int64.
func ToInt64(value any) (int64, bool) { return To[int64](value) }

// ToInt converts the textual form of value into a platform-sized int.
func ToInt(value any) (int, bool) { return To[int](value) }

// ToFloat32 converts the textual form of value into a float32.
func ToFloat32(value any) (float32, bool) { return To[float32](value) }

// ToFloat64 converts the textual form of value into a float64.
func ToFloat64(value any) (float64, bool) { return To[float64](value) }

// NumberToString returns the textual form of *value, or false when value is nil.
func NumberToString[N Number](value *N) (string, bool) {
	if value == nil {
		return "", false
	}

	v := reflect.ValueOf(*value)

	switch {
	case v.CanInt():
		return strconv.FormatInt(v.Int(), 10), true
	case v.CanFloat():
		return strconv.FormatFloat(v.Float(), 'g', -1, v.Type().Bits()), true
	default:
		return fmt.Sprint(*value), true
	}
}

func parse[N Number](value any) (N, error) {
	var zero N

	text, ok := textual.Form(value)
	if !ok {
		return zero, halcyon.ErrAbsent
	}

	target := reflect.TypeFor[N]()

	switch target.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(text, 10, target.Bits())
		if err != nil {
			return zero, classify(text, target, err)
		}

		return N(n), nil
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(text, target.Bits())
		if err != nil {
			return zero, classify(text, target, err)
		}

		if math.IsNaN(f) || math.IsInf(f, 0) {
			return zero, fmt.Errorf("%w: %w: %q", halcyon.ErrInvalid, errNotFinite, text)
		}

		return N(f), nil
	default:
		return zero, fmt.Errorf("%w: %w: %s", halcyon.ErrInvalid, errUnsupported, target)
	}
}

func classify(text string, target reflect.Type, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%w: %w: %q does not fit %s", halcyon.ErrInvalid, errOutOfRange, text, target)
	}

	return fmt.Errorf("%w: %w: %q", halcyon.ErrInvalid, errNotANumber, text)
}
