// Package controller provides the terminal front ends for runs, column listings and mapping files.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "tabanon.dev/pkg/tabanon/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRun StartMode = iota
	ModeBrowse
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithRunMode shows progress while rows are anonymized.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// WithBrowseMode shows static content such as column listings.
func WithBrowseMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeBrowse
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeRun}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// RunInfo describes a run that is about to process rows.
type RunInfo struct {
	RunID   string
	Dataset string
	Columns []string
	Method  m.Method
	// Rows is -1 when the dataset cannot count its rows up front.
	Rows int
}

// UI defines how workflows report to the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayRunStart(ctx context.Context, info RunInfo)
	DisplayProgress(ctx context.Context, done, total int)
	DisplaySummary(ctx context.Context, summary m.RunSummary) error
	DisplayColumns(ctx context.Context, dataset string, columns []m.Column) error
	DisplayMappings(ctx context.Context, path m.Path, tables []m.MappingTable) error
}

// NewUI returns the interactive TUI when useTTY is set, the SimpleUI otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
