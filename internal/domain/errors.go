package domain

import (
	"errors"
	"fmt"

	"tabanon.dev/pkg/tabanon/internal/adapter"
)

var (
	// ErrConfiguration marks an invalid option combination detected before any row is processed.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrMappingExhausted marks a one-to-one column with no unused value left in its range.
	ErrMappingExhausted = errors.New("mapping exhausted")
	// ErrMappingFormat marks a structurally invalid mapping file.
	ErrMappingFormat = adapter.ErrMappingFormat
)

// NewConfigurationError wraps a detail message in ErrConfiguration.
func NewConfigurationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

// NewMappingExhaustedError names the column that ran out of unique values.
func NewMappingExhaustedError(column string) error {
	return fmt.Errorf("%w: cannot find unique value for column %q", ErrMappingExhausted, column)
}

// IsConfigurationError reports whether err is an option validation failure.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsMappingExhausted reports whether err is a one-to-one exhaustion failure.
func IsMappingExhausted(err error) bool {
	return errors.Is(err, ErrMappingExhausted)
}

// IsMappingFormatError reports whether err comes from a malformed mapping file.
func IsMappingFormatError(err error) bool {
	return errors.Is(err, ErrMappingFormat)
}
