// Package adapter contains the host dataset, mapping file and filesystem adapters.
package adapter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	m "tabanon.dev/pkg/tabanon/internal/model"
)

const defaultFileMode os.FileMode = 0o644

// FileSystem abstracts the file operations the dataset and mapping adapters
// rely on, so their logic can be tested without touching unrelated paths.
type FileSystem interface {
	// FileInfo returns metadata for a path so callers can check existence.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// Exists reports whether path exists.
	Exists(ctx context.Context, path m.Path) (bool, error)

	// Open opens a file for reading.
	Open(ctx context.Context, path m.Path) (io.ReadCloser, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// ReplaceFile writes a sibling temp file through write and renames it over
	// path, so readers never observe a half-written file.
	ReplaceFile(ctx context.Context, path m.Path, write func(w io.Writer) error) error

	// SpillDir returns the directory used for temporary row staging.
	SpillDir(ctx context.Context, path m.Path) m.Path
}

// LocalFileSystem is the os-backed FileSystem.
type LocalFileSystem struct{}

// NewLocalFileSystem constructs a LocalFileSystem.
func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{}
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalFileSystem) FileInfo(_ context.Context, path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Exists reports whether path exists.
func (a *LocalFileSystem) Exists(ctx context.Context, path m.Path) (bool, error) {
	_, err := a.FileInfo(ctx, path)
	if err == nil {
		return true, nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}

// Open opens a file for reading.
func (a *LocalFileSystem) Open(_ context.Context, path m.Path) (io.ReadCloser, error) {
	// #nosec G304 - path is a user-selected dataset or mapping file
	return os.Open(string(path))
}

// ReadFile loads file contents from disk.
func (a *LocalFileSystem) ReadFile(_ context.Context, path m.Path) ([]byte, error) {
	// #nosec G304 - path is a user-selected dataset or mapping file
	return os.ReadFile(string(path))
}

// ReplaceFile writes through a temp file in the target directory and renames it into place.
func (a *LocalFileSystem) ReplaceFile(ctx context.Context, path m.Path, write func(w io.Writer) error) error {
	target := string(path)
	dir := filepath.Dir(target)

	mode := defaultFileMode
	if info, err := a.FileInfo(ctx, path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".tmp-*")
	if err != nil {
		slog.Error("Failed to create temp file", "dir", dir, "error", err)
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	tmpPath := tmp.Name()
	committed := false

	defer func() {
		if committed {
			return
		}

		if err := os.Remove(tmpPath); err != nil && !os.IsNotExist(err) {
			slog.Error("Failed to remove temp file", "path", tmpPath, "error", err)
		}
	}()

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("failed to set file mode: %w", err)
	}

	if err := os.Rename(tmpPath, target); err != nil {
		slog.Error("Failed to replace file", "path", target, "error", err)
		return fmt.Errorf("failed to replace %s: %w", target, err)
	}

	committed = true

	slog.Debug("Replaced file", "path", target)

	return nil
}

// SpillDir places staging files next to the dataset so the final rename stays on one device.
func (a *LocalFileSystem) SpillDir(_ context.Context, path m.Path) m.Path {
	dir := filepath.Dir(string(path))
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}

	return m.Path(dir)
}
