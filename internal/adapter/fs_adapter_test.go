package adapter

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "tabanon.dev/pkg/tabanon/internal/model"
)

func TestLocalFileSystem_Exists(t *testing.T) {
	fs := NewLocalFileSystem()
	ctx := context.Background()
	root := t.TempDir()

	path := filepath.Join(root, "data.csv")
	writeTestFile(t, path, "a\n")

	exists, err := fs.Exists(ctx, m.Path(path))
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = fs.Exists(ctx, m.Path(filepath.Join(root, "missing.csv")))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalFileSystem_ReplaceFile(t *testing.T) {
	fs := NewLocalFileSystem()
	ctx := context.Background()

	t.Run("creates a new file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")

		err := fs.ReplaceFile(ctx, m.Path(path), func(w io.Writer) error {
			_, err := io.WriteString(w, "hello")
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, "hello", readTestFile(t, path))
	})

	t.Run("keeps the mode of the replaced file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

		err := fs.ReplaceFile(ctx, m.Path(path), func(w io.Writer) error {
			_, err := io.WriteString(w, "new")
			return err
		})
		require.NoError(t, err)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
		assert.Equal(t, "new", readTestFile(t, path))
	})

	t.Run("write failure leaves the original untouched", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.txt")
		writeTestFile(t, path, "old")

		boom := errors.New("boom")
		err := fs.ReplaceFile(ctx, m.Path(path), func(w io.Writer) error {
			_, _ = io.WriteString(w, "partial")
			return boom
		})
		require.ErrorIs(t, err, boom)
		assert.Equal(t, "old", readTestFile(t, path))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestLocalFileSystem_SpillDir(t *testing.T) {
	fs := NewLocalFileSystem()
	assert.Equal(t, m.Path("data"), fs.SpillDir(context.Background(), m.Path("data/survey.csv")))
	assert.Equal(t, m.Path("."), fs.SpillDir(context.Background(), m.Path("survey.csv")))
}
