package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"tabanon.dev/pkg/tabanon/internal/adapter"
)

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		configuration bool
		exhausted     bool
		format        bool
	}{
		{"configuration", NewConfigurationError("bad %s", "root"), true, false, false},
		{"exhausted", NewMappingExhaustedError("id"), false, true, false},
		{"format", fmt.Errorf("%w: line 3: bad", adapter.ErrMappingFormat), false, false, true},
		{"wrapped configuration", fmt.Errorf("run failed: %w", NewConfigurationError("x")), true, false, false},
		{"other", errors.New("boom"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.configuration, IsConfigurationError(tt.err))
			assert.Equal(t, tt.exhausted, IsMappingExhausted(tt.err))
			assert.Equal(t, tt.format, IsMappingFormatError(tt.err))
		})
	}
}
