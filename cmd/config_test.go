package cmd

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabanon.dev/pkg/tabanon/internal/adapter"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "tabanon", configBaseName)
	assert.Equal(t, "tabanon.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "anonymize.method", methodConfigKey)
	assert.Equal(t, "anonymize.max_random", maxRandomConfigKey)
	assert.Equal(t, "dataset.text_width", textWidthConfigKey)
	assert.Equal(t, "TABANON", envPrefix)
	assert.Equal(t, ".tabanon.log", defaultLogFilename)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" WARNING ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	configureLogger(filepath.Join(t.TempDir(), "test.log"), true)

	require.NotNil(t, globalLogger)
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelDebug))
}

func TestDatasetSpec(t *testing.T) {
	spec := datasetSpec("people.db", "people", "")

	assert.Equal(t, "people.db", spec.Path.String())
	assert.Equal(t, "people", spec.Table)
	assert.Empty(t, spec.Dictionary)
	assert.Equal(t, adapter.DefaultTextWidth, spec.TextWidth)
	assert.Equal(t, adapter.DefaultMaxNameLength, spec.MaxNameLength)
}
