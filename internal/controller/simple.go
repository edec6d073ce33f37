package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	m "tabanon.dev/pkg/tabanon/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(_ context.Context) {}

// DisplayRunStart announces the run.
func (s *SimpleUI) DisplayRunStart(ctx context.Context, info RunInfo) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Anonymizing %s in %s (%s rows, %s method)\n",
		strings.Join(info.Columns, ", "), info.Dataset, formatRows(info.Rows), info.Method)
	s.printf("Run %s\n", info.RunID)
}

// DisplayProgress prints the number of processed rows.
func (s *SimpleUI) DisplayProgress(ctx context.Context, done, total int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Processed %s/%s rows\n", formatRows(done), formatRows(total))
}

// DisplaySummary prints the per-column outcome of a run.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.RunSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderSummaryTable(summary))

	return nil
}

// DisplayColumns prints the column descriptors of a dataset.
func (s *SimpleUI) DisplayColumns(ctx context.Context, dataset string, columns []m.Column) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n\n%s", dataset, renderColumnsTable(columns))

	return nil
}

// DisplayMappings prints every table of a value mapping file.
func (s *SimpleUI) DisplayMappings(ctx context.Context, path m.Path, tables []m.MappingTable) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n\n%s", path, renderMappings(tables))

	return nil
}

func (s *SimpleUI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
