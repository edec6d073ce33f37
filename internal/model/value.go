package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxExactInteger is the largest magnitude an integer cell may have; beyond it
// distinct integers share a float64 and would collapse into one mapping key.
const MaxExactInteger int64 = 1 << 53

// ErrInexactInteger marks an integer cell too large to be held exactly as a number.
var ErrInexactInteger = errors.New("integer cannot be represented exactly as a number")

// Value is a single cell. The zero Value is numeric 0; use Missing for the
// system-missing marker. Values are comparable and serve as mapping keys.
type Value struct {
	Missing bool
	Num     float64
	Str     string
}

// Numeric returns a numeric cell. NaN is treated as missing.
func Numeric(f float64) Value {
	if math.IsNaN(f) {
		return Missing()
	}

	return Value{Num: f}
}

// Text returns a string cell. The empty string is treated as missing.
func Text(s string) Value {
	if s == "" {
		return Missing()
	}

	return Value{Str: s}
}

// Missing returns the system-missing marker.
func Missing() Value {
	return Value{Missing: true}
}

// Text renders the value the way it is written to mapping files and CSV cells:
// shortest decimal form for numbers, the raw string for text, empty for missing.
func (v Value) Text() string {
	if v.Missing {
		return ""
	}

	if v.Str != "" {
		return v.Str
	}

	return strconv.FormatFloat(v.Num, 'f', -1, 64)
}

// String implements fmt.Stringer for log output.
func (v Value) String() string {
	if v.Missing {
		return "<missing>"
	}

	return v.Text()
}

// ParseValue reads a cell of the given kind from its text form.
func ParseValue(kind Kind, raw string) (Value, error) {
	switch kind {
	case KindNumeric:
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return Missing(), nil
		}

		if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return Integer(n)
		}

		if IsIntegerText(trimmed) {
			return Value{}, fmt.Errorf("%w: %s", ErrInexactInteger, trimmed)
		}

		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return Value{}, fmt.Errorf("invalid numeric value %q: %w", raw, err)
		}

		return Numeric(f), nil
	case KindText:
		return Text(raw), nil
	default:
		return Value{}, fmt.Errorf("unsupported column kind %s", kind)
	}
}

// Integer returns a numeric cell for n, or ErrInexactInteger when n lies
// outside [-MaxExactInteger, MaxExactInteger].
func Integer(n int64) (Value, error) {
	if n > MaxExactInteger || n < -MaxExactInteger {
		return Value{}, fmt.Errorf("%w: %d", ErrInexactInteger, n)
	}

	return Value{Num: float64(n)}, nil
}

// IsIntegerText reports whether s is an optionally signed run of decimal digits.
func IsIntegerText(s string) bool {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+")
	if s == "" {
		return false
	}

	return strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) < 0
}
