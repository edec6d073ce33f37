// Package domain contains the anonymization engine and the workflows driving it.
package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"tabanon.dev/pkg/tabanon/internal/adapter"
	"tabanon.dev/pkg/tabanon/internal/controller"
	m "tabanon.dev/pkg/tabanon/internal/model"
)

// progressInterval is the number of rows between progress updates.
const progressInterval = 1000

// AnonymizeArgs contains the options of one anonymization run.
type AnonymizeArgs struct {
	Dataset adapter.DatasetSpec
	// Columns are anonymized, and renamed, in this order.
	Columns   []string
	Method    m.Method
	MaxRandom []int64
	OneToOne  []string
	ValueRoot string
	NameRoot  string
	Offset    *float64
	Scale     *float64
	Seed      *uint64

	// Mapping is a value mapping file used to seed the tables.
	Mapping    m.Path
	SaveNames  m.Path
	SaveValues m.Path
}

// ColumnsArgs selects the dataset whose columns are listed.
type ColumnsArgs struct {
	Dataset adapter.DatasetSpec
}

// ViewArgs selects the value mapping file to display.
type ViewArgs struct {
	Mapping m.Path
}

// Workflow defines the user-facing operations.
type Workflow interface {
	Anonymize(ctx context.Context, args AnonymizeArgs) (m.RunSummary, error)
	Columns(ctx context.Context, args ColumnsArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.DatasetOpener
	adapter.MappingStore
	ui controller.UI
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(opener adapter.DatasetOpener, store adapter.MappingStore, ui controller.UI) Workflow {
	return &workflow{
		DatasetOpener: opener,
		MappingStore:  store,
		ui:            ui,
	}
}

// Anonymize runs one pass over the dataset: every value of the selected
// columns goes through its column's mapper, then metadata is cleared, columns
// are renamed, the dataset is committed and the mapping files are written.
// A failure before Commit leaves the dataset unchanged.
func (w *workflow) Anonymize(ctx context.Context, args AnonymizeArgs) (m.RunSummary, error) {
	runID := uuid.NewString()
	logger := slog.With("run", runID)

	ds, err := w.openDataset(ctx, args.Dataset)
	if err != nil {
		return m.RunSummary{}, err
	}

	defer func() {
		if err := ds.Close(); err != nil {
			logger.Error("Failed to close dataset", "dataset", ds.Name(), "error", err)
		}
	}()

	columns, err := ds.Columns(ctx)
	if err != nil {
		return m.RunSummary{}, fmt.Errorf("failed to read columns: %w", err)
	}

	sel, err := validateOptions(args, columns)
	if err != nil {
		logger.Error("Invalid options", "error", err)
		return m.RunSummary{}, err
	}

	renames, err := planRenames(args.NameRoot, columns, sel.columns, ds.MaxNameLength())
	if err != nil {
		logger.Error("Invalid name root", "root", args.NameRoot, "error", err)
		return m.RunSummary{}, err
	}

	mappers, err := buildMappers(sel, NewRandomSource(args.Seed))
	if err != nil {
		return m.RunSummary{}, err
	}

	if args.Mapping != "" {
		if err := w.seedFromFile(ctx, args.Mapping, mappers); err != nil {
			return m.RunSummary{}, err
		}
	}

	total, err := ds.RowCount(ctx)
	if err != nil {
		logger.Warn("Row count unavailable", "error", err)

		total = -1
	}

	logger.Info("Starting anonymization", "dataset", ds.Name(), "columns", args.Columns, "method", args.Method, "rows", total)

	if err := w.ui.Start(ctx, controller.WithRunMode()); err != nil {
		return m.RunSummary{}, fmt.Errorf("failed to start UI: %w", err)
	}

	defer w.ui.Close(ctx)

	w.ui.DisplayRunStart(ctx, controller.RunInfo{
		RunID:   runID,
		Dataset: ds.Name(),
		Columns: args.Columns,
		Method:  args.Method,
		Rows:    total,
	})

	rows, err := w.transformRows(ctx, ds, sel.columns, mappers, total)
	if err != nil {
		logger.Error("Failed to anonymize rows", "rows", rows, "error", err)
		return m.RunSummary{}, fmt.Errorf("failed to anonymize rows: %w", err)
	}

	if err := w.finish(ctx, ds, sel.columns, renames); err != nil {
		return m.RunSummary{}, err
	}

	if args.SaveNames != "" && len(renames) > 0 {
		if err := w.SaveNames(ctx, args.SaveNames, renames); err != nil {
			return m.RunSummary{}, err
		}
	}

	if args.SaveValues != "" {
		tables := lo.Map(mappers, func(vm *ValueMapper, _ int) m.MappingTable { return vm.Table() })
		if err := w.SaveMappings(ctx, args.SaveValues, tables); err != nil {
			return m.RunSummary{}, err
		}
	}

	summary := summarize(runID, ds.Name(), rows, mappers, renames)

	logger.Info("Anonymization complete", "dataset", ds.Name(), "rows", rows)

	if err := w.ui.DisplaySummary(ctx, summary); err != nil {
		return summary, err
	}

	w.ui.Wait(ctx)

	return summary, nil
}

// Columns lists the column descriptors of a dataset.
func (w *workflow) Columns(ctx context.Context, args ColumnsArgs) error {
	ds, err := w.openDataset(ctx, args.Dataset)
	if err != nil {
		return err
	}

	defer func() {
		if err := ds.Close(); err != nil {
			slog.Error("Failed to close dataset", "dataset", ds.Name(), "error", err)
		}
	}()

	columns, err := ds.Columns(ctx)
	if err != nil {
		return fmt.Errorf("failed to read columns: %w", err)
	}

	if err := w.ui.Start(ctx, controller.WithBrowseMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}

	defer w.ui.Close(ctx)

	if err := w.ui.DisplayColumns(ctx, ds.Name(), columns); err != nil {
		return err
	}

	w.ui.Wait(ctx)

	return nil
}

// View displays a saved value mapping file.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	tables, err := w.LoadMappings(ctx, args.Mapping, nil)
	if err != nil {
		return err
	}

	if err := w.ui.Start(ctx, controller.WithBrowseMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}

	defer w.ui.Close(ctx)

	if err := w.ui.DisplayMappings(ctx, args.Mapping, tables); err != nil {
		return err
	}

	w.ui.Wait(ctx)

	return nil
}

// openDataset retries a failed open once before giving up.
func (w *workflow) openDataset(ctx context.Context, spec adapter.DatasetSpec) (adapter.Dataset, error) {
	ds, err := w.Open(ctx, spec)
	if err == nil {
		return ds, nil
	}

	slog.Warn("Failed to open dataset, retrying", "path", spec.Path, "error", err)

	ds, err = w.Open(ctx, spec)
	if err != nil {
		slog.Error("Failed to open dataset", "path", spec.Path, "error", err)
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}

	return ds, nil
}

func (w *workflow) seedFromFile(ctx context.Context, path m.Path, mappers []*ValueMapper) error {
	kinds := make(map[string]m.Kind, len(mappers))
	for _, vm := range mappers {
		kinds[vm.Column().Name] = vm.Column().Kind
	}

	tables, err := w.LoadMappings(ctx, path, kinds)
	if err != nil {
		return fmt.Errorf("failed to load mapping file: %w", err)
	}

	return seedMappers(mappers, tables)
}

func (w *workflow) transformRows(
	ctx context.Context,
	ds adapter.Dataset,
	columns []m.Column,
	mappers []*ValueMapper,
	total int,
) (int, error) {
	indices := lo.Map(columns, func(c m.Column, _ int) int { return c.Index })

	rows, err := ds.Scan(ctx, indices, func(row int, values []m.Value) ([]m.Value, error) {
		out := make([]m.Value, len(values))
		for i, value := range values {
			sub, err := mappers[i].Transform(value)
			if err != nil {
				return nil, err
			}

			out[i] = sub
		}

		if row%progressInterval == 0 {
			w.ui.DisplayProgress(ctx, row, total)
		}

		return out, nil
	})
	if err != nil {
		return rows, err
	}

	w.ui.DisplayProgress(ctx, rows, total)

	return rows, nil
}

func (w *workflow) finish(ctx context.Context, ds adapter.Dataset, columns []m.Column, renames []m.Rename) error {
	for _, column := range columns {
		if err := ds.ClearMetadata(ctx, column.Index); err != nil {
			return fmt.Errorf("failed to clear metadata of %q: %w", column.Name, err)
		}
	}

	for i, rename := range renames {
		if err := ds.RenameColumn(ctx, columns[i].Index, rename.To); err != nil {
			return fmt.Errorf("failed to rename %q: %w", rename.From, err)
		}
	}

	if err := ds.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit dataset: %w", err)
	}

	return nil
}

func buildMappers(sel selection, rng RandomSource) ([]*ValueMapper, error) {
	mappers := make([]*ValueMapper, 0, len(sel.columns))

	for i, column := range sel.columns {
		vm, err := NewValueMapper(column, sel.configs[i], rng)
		if err != nil {
			return nil, err
		}

		mappers = append(mappers, vm)
	}

	return mappers, nil
}

// seedMappers restores saved entries into the mappers of matching columns.
func seedMappers(mappers []*ValueMapper, tables []m.MappingTable) error {
	byName := lo.KeyBy(mappers, func(vm *ValueMapper) string { return vm.Column().Name })

	for _, table := range tables {
		vm, ok := byName[table.Column]
		if !ok {
			continue
		}

		for _, entry := range table.Entries {
			if err := vm.Restore(entry.Substitute, entry.Original); err != nil {
				return err
			}
		}

		slog.Debug("Seeded mapping", "column", table.Column, "entries", len(table.Entries))
	}

	return nil
}

func summarize(runID, dataset string, rows int, mappers []*ValueMapper, renames []m.Rename) m.RunSummary {
	newNames := lo.SliceToMap(renames, func(r m.Rename) (string, string) { return r.From, r.To })

	return m.RunSummary{
		RunID:   runID,
		Dataset: dataset,
		Rows:    rows,
		Columns: lo.Map(mappers, func(vm *ValueMapper, _ int) m.ColumnSummary {
			name := vm.Column().Name

			newName, ok := newNames[name]
			if !ok {
				newName = name
			}

			return m.ColumnSummary{
				Name:     name,
				NewName:  newName,
				Kind:     vm.Column().Kind,
				Method:   vm.Method(),
				OneToOne: vm.OneToOne(),
				Distinct: vm.Distinct(),
			}
		}),
	}
}
