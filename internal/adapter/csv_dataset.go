package adapter

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	m "tabanon.dev/pkg/tabanon/internal/model"
	"tabanon.dev/pkg/tabanon/pkg"
)

// CSVDataset is a comma-separated file with a header row and an optional
// YAML dictionary. Rewritten rows are staged on disk until Commit.
type CSVDataset struct {
	fs         FileSystem
	path       m.Path
	dictionary m.Path
	maxName    int
	columns    []m.Column
	rows       int
	staged     pkg.FileSpill[[]string]
}

// OpenCSVDataset reads the header, applies the dictionary and infers the kind
// and width of undeclared columns with a full pre-scan.
func OpenCSVDataset(ctx context.Context, fs FileSystem, spec DatasetSpec) (*CSVDataset, error) {
	dictPath := spec.Dictionary
	if dictPath == "" {
		dictPath = DictionaryPath(spec.Path)
	}

	dict, err := loadDictionary(ctx, fs, dictPath)
	if err != nil {
		return nil, err
	}

	ds := &CSVDataset{
		fs:         fs,
		path:       spec.Path,
		dictionary: dictPath,
		maxName:    spec.MaxNameLength,
	}

	var stats []columnStats

	err = ds.readRows(ctx, func(header []string) error {
		ds.columns = make([]m.Column, len(header))
		stats = make([]columnStats, len(header))

		for i, name := range header {
			ds.columns[i] = m.Column{Index: i, Name: name}
			stats[i].numeric = true
		}

		return nil
	}, func(_ int, record []string) error {
		ds.rows++
		for i, cell := range record {
			stats[i].observe(cell)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	for i := range ds.columns {
		column := &ds.columns[i]
		stats[i].apply(column)

		if entry, ok := dict[column.Name]; ok {
			if err := entry.apply(column, spec.TextWidth); err != nil {
				return nil, fmt.Errorf("invalid dictionary %s: %w", dictPath, err)
			}
		}
	}

	slog.Info("Opened CSV dataset", "path", spec.Path, "columns", len(ds.columns), "rows", ds.rows)

	return ds, nil
}

// Name implements Dataset.
func (d *CSVDataset) Name() string { return string(d.path) }

// MaxNameLength implements Dataset.
func (d *CSVDataset) MaxNameLength() int { return d.maxName }

// Columns implements Dataset.
func (d *CSVDataset) Columns(_ context.Context) ([]m.Column, error) {
	columns := make([]m.Column, len(d.columns))
	copy(columns, d.columns)

	return columns, nil
}

// RowCount implements Dataset.
func (d *CSVDataset) RowCount(_ context.Context) (int, error) {
	return d.rows, nil
}

// Scan implements Dataset.
func (d *CSVDataset) Scan(ctx context.Context, columns []int, fn RowFunc) (int, error) {
	for _, index := range columns {
		if err := checkColumnIndex(d.columns, index); err != nil {
			return 0, err
		}
	}

	if err := d.discard(); err != nil {
		return 0, err
	}

	staged, err := pkg.NewFileSpill[[]string](string(d.fs.SpillDir(ctx, d.path)))
	if err != nil {
		return 0, err
	}

	d.staged = staged

	values := make([]m.Value, len(columns))
	rows := 0

	err = d.readRows(ctx, nil, func(row int, record []string) error {
		for i, index := range columns {
			value, err := m.ParseValue(d.columns[index].Kind, record[index])
			if err != nil {
				return fmt.Errorf("row %d, column %q: %w", row, d.columns[index].Name, err)
			}

			values[i] = value
		}

		replaced, err := fn(row, values)
		if err != nil {
			return err
		}

		for i, index := range columns {
			record[index] = replaced[i].Text()
		}

		rows++

		return staged.Append(record)
	})
	if err != nil {
		return rows, err
	}

	return rows, nil
}

// ClearMetadata implements Dataset.
func (d *CSVDataset) ClearMetadata(_ context.Context, column int) error {
	if err := checkColumnIndex(d.columns, column); err != nil {
		return err
	}

	d.columns[column].ValueLabels = nil
	d.columns[column].MissingValues = nil

	return nil
}

// RenameColumn implements Dataset.
func (d *CSVDataset) RenameColumn(_ context.Context, column int, name string) error {
	if err := checkColumnIndex(d.columns, column); err != nil {
		return err
	}

	d.columns[column].Name = name

	return nil
}

// Commit replaces the dataset file with the staged rows under the current
// header, then rewrites the dictionary.
func (d *CSVDataset) Commit(ctx context.Context) error {
	err := d.fs.ReplaceFile(ctx, d.path, func(w io.Writer) error {
		writer := csv.NewWriter(w)

		header := make([]string, len(d.columns))
		for i, column := range d.columns {
			header[i] = column.Name
		}

		if err := writer.Write(header); err != nil {
			return err
		}

		write := func(_ int, record []string) error {
			return writer.Write(record)
		}

		if d.staged != nil {
			err := d.staged.Range(func(index uint64, record []string) error {
				return write(int(index), record)
			})
			if err != nil {
				return err
			}
		} else if err := d.readRows(ctx, nil, write); err != nil {
			return err
		}

		writer.Flush()

		return writer.Error()
	})
	if err != nil {
		slog.Error("Failed to commit CSV dataset", "path", d.path, "error", err)
		return fmt.Errorf("failed to commit dataset: %w", err)
	}

	if err := saveDictionary(ctx, d.fs, d.dictionary, d.columns); err != nil {
		return err
	}

	slog.Info("Committed CSV dataset", "path", d.path, "dictionary", d.dictionary)

	return nil
}

// Close implements Dataset.
func (d *CSVDataset) Close() error {
	return d.discard()
}

func (d *CSVDataset) discard() error {
	if d.staged == nil {
		return nil
	}

	err := d.staged.Close()
	d.staged = nil

	return err
}

// readRows streams the dataset file. onHeader may be nil; row numbers start at 1.
func (d *CSVDataset) readRows(ctx context.Context, onHeader func([]string) error, onRow func(int, []string) error) error {
	file, err := d.fs.Open(ctx, d.path)
	if err != nil {
		slog.Error("Failed to open CSV dataset", "path", d.path, "error", err)
		return fmt.Errorf("failed to open dataset: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("Failed to close CSV dataset", "path", d.path, "error", err)
		}
	}()

	reader := csv.NewReader(skipBOM(file))

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("dataset %s has no header row", d.path)
	}

	if err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}

	if onHeader != nil {
		if err := onHeader(header); err != nil {
			return err
		}
	}

	for row := 1; ; row++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to read row %d: %w", row, err)
		}

		if err := onRow(row, record); err != nil {
			return err
		}
	}
}

// columnStats drives kind and width inference for undeclared columns.
type columnStats struct {
	numeric bool
	width   int
}

func (s *columnStats) observe(cell string) {
	s.width = max(s.width, utf8.RuneCountInString(cell))

	if !s.numeric {
		return
	}

	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return
	}

	// Integers past the exact float64 range are kept as text so each stays a distinct key.
	if m.IsIntegerText(trimmed) {
		if _, err := m.ParseValue(m.KindNumeric, trimmed); err != nil {
			s.numeric = false
		}

		return
	}

	if _, err := strconv.ParseFloat(trimmed, 64); err != nil {
		s.numeric = false
	}
}

func (s columnStats) apply(column *m.Column) {
	if s.numeric {
		column.Kind = m.KindNumeric
		return
	}

	column.Kind = m.KindText
	column.Width = max(s.width, 1)
}
