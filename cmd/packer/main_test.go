package main

import (
	"reflect"
	"testing"
)

func TestParseValues(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []any
	}{
		{"empty", "", nil},
		{"single int", "42", []any{int64(42)}},
		{"negative", "-7", []any{int64(-7)}},
		{"hex literal", "0xFF", []any{int64(255)}},
		{"float", "1.5", []any{1.5}},
		{"quoted string", `"hello"`, []any{"hello"}},
		{"bare string", "hello", []any{"hello"}},
		{"mixed", `1, 2.5, "a,b", raw`, []any{int64(1), 2.5, "a,b", "raw"}},
		{"uint64 above int64", "18446744073709551615", []any{uint64(18446744073709551615)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseValues(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseValues(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"int", int64(5), "5"},
		{"float", 1.5, "1.5"},
		{"string quotes", "hi", `"hi"`},
		{"uint64", uint64(9), "9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatValue(tt.value); got != tt.want {
				t.Errorf("formatValue(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
