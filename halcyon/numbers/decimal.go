package numbers

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/therobotinitiative/Halcyon/halcyon"
	"github.com/therobotinitiative/Halcyon/halcyon/internal/textual"
)

// ToDecimal converts the textual form of value into an arbitrary-precision decimal.
// It returns false when value is absent or not a decimal number. There is no width
// to overflow, so values rejected by ToInt64 or ToFloat64 for size still parse here.
//
// Example:
//
//	amount, ok := numbers.ToDecimal("12345678901234567890.0001")
func ToDecimal(value any) (decimal.Decimal, bool) {
	d, err := parseDecimal(value)

	return d, err == nil
}

// DecimalToString returns the textual form of *value, or false when value is nil.
func DecimalToString(value *decimal.Decimal) (string, bool) {
	if value == nil {
		return "", false
	}

	return value.String(), true
}

func parseDecimal(value any) (decimal.Decimal, error) {
	if d, ok := value.(decimal.Decimal); ok {
		return d, nil
	}

	text, ok := textual.Form(value)
	if !ok {
		return decimal.Zero, halcyon.ErrAbsent
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %w", halcyon.ErrInvalid, err)
	}

	return d, nil
}
