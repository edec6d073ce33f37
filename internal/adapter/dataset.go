package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	m "tabanon.dev/pkg/tabanon/internal/model"
)

const (
	// DefaultTextWidth is used for text columns whose width is not declared.
	DefaultTextWidth = 255
	// DefaultMaxNameLength is the longest column name the hosts accept.
	DefaultMaxNameLength = 64
)

// ErrUnsupportedDataset marks a dataset path with no matching backend.
var ErrUnsupportedDataset = errors.New("unsupported dataset format")

// RowFunc receives the selected cells of one row, in the order the columns
// were requested, and returns their replacements.
type RowFunc func(row int, values []m.Value) ([]m.Value, error)

// Dataset is an open host dataset. Changes are staged until Commit.
type Dataset interface {
	// Name identifies the dataset in logs and summaries.
	Name() string

	// Columns returns the column descriptors in dataset order.
	Columns(ctx context.Context) ([]m.Column, error)

	// RowCount returns the number of rows, or -1 when unknown.
	RowCount(ctx context.Context) (int, error)

	// MaxNameLength returns the longest column name the host accepts.
	MaxNameLength() int

	// Scan visits every row in dataset order and writes back what fn returns.
	// It returns the number of rows visited.
	Scan(ctx context.Context, columns []int, fn RowFunc) (int, error)

	// ClearMetadata drops value labels and missing-value declarations.
	ClearMetadata(ctx context.Context, column int) error

	// RenameColumn changes a column name.
	RenameColumn(ctx context.Context, column int, name string) error

	// Commit persists the staged changes.
	Commit(ctx context.Context) error

	// Close releases the dataset. Uncommitted changes are discarded.
	Close() error
}

// DatasetSpec locates a dataset and carries the host options for it.
type DatasetSpec struct {
	Path          m.Path
	Table         string
	Dictionary    m.Path
	TextWidth     int
	MaxNameLength int
}

// DatasetOpener opens datasets.
type DatasetOpener interface {
	Open(ctx context.Context, spec DatasetSpec) (Dataset, error)
}

// LocalDatasetOpener picks the backend from the file extension.
type LocalDatasetOpener struct {
	fs FileSystem
}

// NewLocalDatasetOpener constructs a LocalDatasetOpener.
func NewLocalDatasetOpener(fs FileSystem) *LocalDatasetOpener {
	return &LocalDatasetOpener{fs: fs}
}

// Open implements DatasetOpener.
func (o *LocalDatasetOpener) Open(ctx context.Context, spec DatasetSpec) (Dataset, error) {
	if spec.TextWidth <= 0 {
		spec.TextWidth = DefaultTextWidth
	}

	if spec.MaxNameLength <= 0 {
		spec.MaxNameLength = DefaultMaxNameLength
	}

	switch ext := strings.ToLower(filepath.Ext(string(spec.Path))); ext {
	case ".csv":
		return OpenCSVDataset(ctx, o.fs, spec)
	case ".db", ".sqlite", ".sqlite3":
		return OpenSQLiteDataset(ctx, o.fs, spec)
	default:
		slog.Error("Unsupported dataset", "path", spec.Path, "extension", ext)
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDataset, ext)
	}
}

func checkColumnIndex(columns []m.Column, index int) error {
	if index < 0 || index >= len(columns) {
		return fmt.Errorf("column index %d out of range", index)
	}

	return nil
}
