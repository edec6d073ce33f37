package adapter

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	m "tabanon.dev/pkg/tabanon/internal/model"
)

const (
	// mappingSeparator is the literal middle field of every entry record.
	mappingSeparator = "="

	headerFields = 1
	entryFields  = 3

	utf8BOM = "\ufeff"
)

// ErrMappingFormat marks a structurally invalid mapping file.
var ErrMappingFormat = errors.New("invalid mapping file format")

// MappingStore reads and writes value mapping files and name mapping files.
type MappingStore interface {
	// LoadMappings parses a value mapping file. Only columns present in kinds
	// are returned, parsed with their kind; a nil kinds map returns every
	// column as text.
	LoadMappings(ctx context.Context, path m.Path, kinds map[string]m.Kind) ([]m.MappingTable, error)

	// SaveMappings writes one block per table, entries sorted by the text
	// form of the substitute.
	SaveMappings(ctx context.Context, path m.Path, tables []m.MappingTable) error

	// SaveNames writes one "old = new" line per rename.
	SaveNames(ctx context.Context, path m.Path, renames []m.Rename) error
}

// CSVMappingStore implements MappingStore on comma-separated text files:
//
//	<column>
//	<substitute>,=,<original>
type CSVMappingStore struct {
	fs FileSystem
}

// NewCSVMappingStore constructs a CSVMappingStore on top of fs.
func NewCSVMappingStore(fs FileSystem) *CSVMappingStore {
	return &CSVMappingStore{fs: fs}
}

// LoadMappings implements MappingStore.
func (s *CSVMappingStore) LoadMappings(ctx context.Context, path m.Path, kinds map[string]m.Kind) ([]m.MappingTable, error) {
	file, err := s.fs.Open(ctx, path)
	if err != nil {
		slog.Error("Failed to open mapping file", "path", path, "error", err)
		return nil, fmt.Errorf("failed to open mapping file: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("Failed to close mapping file", "path", path, "error", err)
		}
	}()

	reader := csv.NewReader(skipBOM(file))
	reader.FieldsPerRecord = -1

	var (
		tables   []m.MappingTable
		current  *m.MappingTable
		skipping bool
	)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMappingFormat, err)
		}

		line, _ := reader.FieldPos(0)

		switch len(record) {
		case headerFields:
			if current != nil {
				tables = append(tables, *current)
			}

			current, skipping = newTableFor(record[0], kinds)
			if skipping {
				slog.Debug("Skipping mapping for unselected column", "column", record[0], "line", line)
			}

		case entryFields:
			if skipping {
				continue
			}

			if current == nil {
				return nil, fmt.Errorf("%w: line %d: entry before any column header", ErrMappingFormat, line)
			}

			entry, err := parseEntry(current.Kind, record, line)
			if err != nil {
				return nil, err
			}

			current.Entries = append(current.Entries, entry)

		default:
			return nil, fmt.Errorf("%w: line %d: expected a column header or a %d-field entry, got %d fields",
				ErrMappingFormat, line, entryFields, len(record))
		}
	}

	if current != nil {
		tables = append(tables, *current)
	}

	slog.Info("Loaded value mappings", "path", path, "columns", len(tables))

	return tables, nil
}

// SaveMappings implements MappingStore. Transform tables get a header only.
func (s *CSVMappingStore) SaveMappings(ctx context.Context, path m.Path, tables []m.MappingTable) error {
	err := s.fs.ReplaceFile(ctx, path, func(w io.Writer) error {
		writer := csv.NewWriter(w)

		for _, table := range tables {
			if err := writer.Write([]string{table.Column}); err != nil {
				return err
			}

			if table.Method == m.MethodTransform {
				continue
			}

			for _, entry := range sortedEntries(table.Entries) {
				record := []string{entry.Substitute.Text(), mappingSeparator, entry.Original.Text()}
				if err := writer.Write(record); err != nil {
					return err
				}
			}
		}

		writer.Flush()

		return writer.Error()
	})
	if err != nil {
		slog.Error("Failed to save value mappings", "path", path, "error", err)
		return fmt.Errorf("failed to save value mappings: %w", err)
	}

	slog.Info("Value mappings written", "path", path, "columns", len(tables))

	return nil
}

// SaveNames implements MappingStore.
func (s *CSVMappingStore) SaveNames(ctx context.Context, path m.Path, renames []m.Rename) error {
	err := s.fs.ReplaceFile(ctx, path, func(w io.Writer) error {
		buffered := bufio.NewWriter(w)
		for _, rename := range renames {
			if _, err := fmt.Fprintf(buffered, "%s = %s\n", rename.From, rename.To); err != nil {
				return err
			}
		}

		return buffered.Flush()
	})
	if err != nil {
		slog.Error("Failed to save name mappings", "path", path, "error", err)
		return fmt.Errorf("failed to save name mappings: %w", err)
	}

	slog.Info("Name mappings written", "path", path, "columns", len(renames))

	return nil
}

func newTableFor(column string, kinds map[string]m.Kind) (*m.MappingTable, bool) {
	if kinds == nil {
		return &m.MappingTable{Column: column, Kind: m.KindText}, false
	}

	kind, ok := kinds[column]
	if !ok {
		return nil, true
	}

	return &m.MappingTable{Column: column, Kind: kind}, false
}

func parseEntry(kind m.Kind, record []string, line int) (m.MappingEntry, error) {
	if record[1] != mappingSeparator {
		return m.MappingEntry{}, fmt.Errorf("%w: line %d: expected %q separator, got %q",
			ErrMappingFormat, line, mappingSeparator, record[1])
	}

	sub, err := parseField(kind, record[0])
	if err != nil {
		return m.MappingEntry{}, fmt.Errorf("%w: line %d: %w", ErrMappingFormat, line, err)
	}

	original, err := parseField(kind, record[2])
	if err != nil {
		return m.MappingEntry{}, fmt.Errorf("%w: line %d: %w", ErrMappingFormat, line, err)
	}

	return m.MappingEntry{Substitute: sub, Original: original}, nil
}

// parseField also accepts "None", which older mapping files used for missing numbers.
func parseField(kind m.Kind, raw string) (m.Value, error) {
	if kind == m.KindNumeric && raw == "None" {
		return m.Missing(), nil
	}

	return m.ParseValue(kind, raw)
}

func sortedEntries(entries []m.MappingEntry) []m.MappingEntry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b m.MappingEntry) int {
		if c := strings.Compare(a.Substitute.Text(), b.Substitute.Text()); c != 0 {
			return c
		}

		return strings.Compare(a.Original.Text(), b.Original.Text())
	})

	return sorted
}

func skipBOM(r io.Reader) io.Reader {
	buffered := bufio.NewReader(r)
	if head, err := buffered.Peek(len(utf8BOM)); err == nil && string(head) == utf8BOM {
		_, _ = buffered.Discard(len(utf8BOM))
	}

	return buffered
}
