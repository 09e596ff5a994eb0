//go:build unit

package text

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type label struct{ value string }

func (l *label) String() string { return l.value }

func TestStringify(t *testing.T) {
	t.Parallel()

	var nilLabel *label
	empty := ""

	tests := []struct {
		name   string
		value  any
		want   string
		wantOK bool
	}{
		{name: "nil", value: nil, wantOK: false},
		{name: "empty", value: "", wantOK: false},
		{name: "empty_pointer", value: &empty, wantOK: false},
		{name: "typed_nil_stringer", value: nilLabel, wantOK: false},
		{name: "empty_stringer", value: &label{}, wantOK: false},
		{name: "text", value: "x", want: "x", wantOK: true},
		{name: "stringer", value: &label{value: "tag"}, want: "tag", wantOK: true},
		{name: "error", value: errors.New("failed"), want: "failed", wantOK: true},
		{name: "number", value: 12, want: "12", wantOK: true},
		{name: "zero_number", value: 0, want: "0", wantOK: true},
		{name: "bool", value: false, want: "false", wantOK: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Stringify(tc.value)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStringOf(t *testing.T) {
	t.Parallel()

	var nilLabel *label

	got, ok := StringOf(nilLabel)
	assert.False(t, ok)
	assert.Empty(t, got)

	got, ok = StringOf(&label{value: "ok"})
	assert.True(t, ok)
	assert.Equal(t, "ok", got)

	_, ok = StringOf(&label{})
	assert.False(t, ok)
}
