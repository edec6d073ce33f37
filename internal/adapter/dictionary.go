package adapter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "tabanon.dev/pkg/tabanon/internal/model"
)

const dictionarySuffix = ".dict.yaml"

// dictionary is the YAML sidecar describing the columns of a CSV dataset.
type dictionary struct {
	Columns []dictionaryColumn `yaml:"columns"`
}

type dictionaryColumn struct {
	Name          string            `yaml:"name"`
	Kind          string            `yaml:"kind"`
	Width         int               `yaml:"width,omitempty"`
	ValueLabels   map[string]string `yaml:"value_labels,omitempty"`
	MissingValues []string          `yaml:"missing_values,omitempty"`
}

// DictionaryPath returns the default sidecar path for a CSV dataset:
// data/survey.csv -> data/survey.dict.yaml.
func DictionaryPath(dataset m.Path) m.Path {
	path := string(dataset)
	return m.Path(strings.TrimSuffix(path, filepath.Ext(path)) + dictionarySuffix)
}

// loadDictionary returns the sidecar entries keyed by column name. A missing
// file yields an empty map.
func loadDictionary(ctx context.Context, fs FileSystem, path m.Path) (map[string]dictionaryColumn, error) {
	exists, err := fs.Exists(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat dictionary: %w", err)
	}

	if !exists {
		slog.Debug("No dictionary found, inferring column kinds", "path", path)
		return map[string]dictionaryColumn{}, nil
	}

	data, err := fs.ReadFile(ctx, path)
	if err != nil {
		slog.Error("Failed to read dictionary", "path", path, "error", err)
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}

	var dict dictionary
	if err := yaml.Unmarshal(data, &dict); err != nil {
		slog.Error("Failed to parse dictionary", "path", path, "error", err)
		return nil, fmt.Errorf("failed to parse dictionary %s: %w", path, err)
	}

	entries := make(map[string]dictionaryColumn, len(dict.Columns))
	for _, column := range dict.Columns {
		entries[column.Name] = column
	}

	return entries, nil
}

// saveDictionary writes every column descriptor, including inferred ones.
func saveDictionary(ctx context.Context, fs FileSystem, path m.Path, columns []m.Column) error {
	dict := dictionary{Columns: make([]dictionaryColumn, 0, len(columns))}
	for _, column := range columns {
		entry := dictionaryColumn{
			Name:          column.Name,
			Kind:          column.Kind.String(),
			ValueLabels:   column.ValueLabels,
			MissingValues: column.MissingValues,
		}
		if column.IsText() {
			entry.Width = column.Width
		}

		dict.Columns = append(dict.Columns, entry)
	}

	err := fs.ReplaceFile(ctx, path, func(w io.Writer) error {
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(dict); err != nil {
			return err
		}

		return encoder.Close()
	})
	if err != nil {
		slog.Error("Failed to write dictionary", "path", path, "error", err)
		return fmt.Errorf("failed to write dictionary: %w", err)
	}

	return nil
}

// apply fills a column descriptor from its sidecar entry.
func (d dictionaryColumn) apply(column *m.Column, defaultWidth int) error {
	if d.Kind != "" {
		kind, err := m.ParseKind(d.Kind)
		if err != nil {
			return fmt.Errorf("column %q: %w", column.Name, err)
		}

		column.Kind = kind
	}

	switch {
	case !column.IsText():
		column.Width = 0
	case d.Width > 0:
		column.Width = d.Width
	case column.Width > 0:
		// inferred width stays
	case defaultWidth > 0:
		column.Width = defaultWidth
	default:
		column.Width = DefaultTextWidth
	}

	column.ValueLabels = d.ValueLabels
	column.MissingValues = d.MissingValues

	return nil
}
