package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	m "tabanon.dev/pkg/tabanon/internal/model"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	maxBarWidth   = 60
	// chromeHeight is the number of lines used around the viewport.
	chromeHeight = 6
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

type runStartMsg RunInfo

type progressMsg struct {
	done  int
	total int
}

type contentMsg struct {
	title string
	body  string
}

// TUI implements UI using Bubble Tea. The program runs on its own goroutine
// and only receives messages; it never reads workflow state.
type TUI struct {
	output  io.Writer
	options []tea.ProgramOption

	mu      sync.Mutex
	program *tea.Program
	group   *errgroup.Group
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, options ...tea.ProgramOption) *TUI {
	return &TUI{output: output, options: options}
}

// Start launches the Bubble Tea program.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return fmt.Errorf("ui already started")
	}

	cfg := newStartConfig(options)
	programOptions := append([]tea.ProgramOption{
		tea.WithOutput(t.output),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	}, t.options...)

	program := tea.NewProgram(newTUIModel(cfg.mode), programOptions...)
	group := &errgroup.Group{}

	group.Go(func() error {
		if _, err := program.Run(); err != nil {
			slog.Debug("TUI program stopped", "error", err)
			return err
		}

		return nil
	})

	t.program = program
	t.group = group

	return nil
}

// Wait blocks until the user closes the program.
func (t *TUI) Wait(_ context.Context) {
	group := t.current()
	if group == nil {
		return
	}

	_ = group.Wait()
}

// Close stops the program and restores the terminal.
func (t *TUI) Close(_ context.Context) {
	t.mu.Lock()
	program, group := t.program, t.group
	t.program, t.group = nil, nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()

	if err := group.Wait(); err != nil {
		slog.Debug("TUI closed with error", "error", err)
	}
}

// DisplayRunStart shows the run header.
func (t *TUI) DisplayRunStart(_ context.Context, info RunInfo) {
	t.send(runStartMsg(info))
}

// DisplayProgress advances the progress bar.
func (t *TUI) DisplayProgress(_ context.Context, done, total int) {
	t.send(progressMsg{done: done, total: total})
}

// DisplaySummary shows the summary table below the progress bar.
func (t *TUI) DisplaySummary(_ context.Context, summary m.RunSummary) error {
	t.send(contentMsg{title: "Summary", body: renderSummaryTable(summary)})
	return nil
}

// DisplayColumns shows the column listing in a scrollable viewport.
func (t *TUI) DisplayColumns(_ context.Context, dataset string, columns []m.Column) error {
	t.send(contentMsg{title: dataset, body: renderColumnsTable(columns)})
	return nil
}

// DisplayMappings shows a value mapping file in a scrollable viewport.
func (t *TUI) DisplayMappings(_ context.Context, path m.Path, tables []m.MappingTable) error {
	t.send(contentMsg{title: string(path), body: renderMappings(tables)})
	return nil
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

func (t *TUI) current() *errgroup.Group {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.group
}

// tuiModel is the Bubble Tea model shared by both modes.
type tuiModel struct {
	mode     StartMode
	info     RunInfo
	done     int
	total    int
	title    string
	content  string
	finished bool
	quitting bool
	width    int
	height   int
	bar      progress.Model
	viewport viewport.Model
}

func newTUIModel(mode StartMode) tuiModel {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = maxBarWidth

	return tuiModel{
		mode:     mode,
		total:    -1,
		width:    defaultWidth,
		height:   defaultHeight,
		bar:      bar,
		viewport: viewport.New(defaultWidth, defaultHeight-chromeHeight),
	}
}

func (tm tuiModel) Init() tea.Cmd {
	return nil
}

func (tm tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		tm.width = msg.Width
		tm.height = msg.Height
		tm.bar.Width = min(maxBarWidth, max(msg.Width-4, 10))
		tm.viewport.Width = msg.Width
		tm.viewport.Height = max(msg.Height-chromeHeight, 1)

		return tm, nil

	case tea.KeyMsg:
		return tm.handleKeyPress(msg)

	case runStartMsg:
		tm.info = RunInfo(msg)
		tm.total = msg.Rows

		return tm, nil

	case progressMsg:
		tm.done = msg.done
		tm.total = msg.total

		return tm, nil

	case contentMsg:
		tm.title = msg.title
		tm.content = msg.body
		tm.finished = true
		tm.viewport.SetContent(msg.body)
		tm.viewport.GotoTop()

		return tm, nil
	}

	return tm, nil
}

//nolint:exhaustive // Only quit keys are handled here; the viewport handles scrolling.
func (tm tuiModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		tm.quitting = true
		return tm, tea.Quit
	}

	if msg.String() == "q" {
		tm.quitting = true
		return tm, tea.Quit
	}

	var cmd tea.Cmd

	tm.viewport, cmd = tm.viewport.Update(msg)

	return tm, cmd
}

func (tm tuiModel) percent() float64 {
	if tm.total <= 0 {
		return 0
	}

	return min(float64(tm.done)/float64(tm.total), 1)
}

func (tm tuiModel) View() string {
	if tm.quitting {
		return ""
	}

	var b strings.Builder

	if tm.mode == ModeRun {
		tm.renderProgress(&b)
	}

	if tm.finished {
		if tm.title != "" {
			b.WriteString(titleStyle.Render(tm.title))
			b.WriteString("\n")
		}

		b.WriteString(tm.viewport.View())
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("↑/↓ scroll • q quit"))
		b.WriteString("\n")
	}

	return b.String()
}

func (tm tuiModel) renderProgress(b *strings.Builder) {
	header := "tabanon"
	if tm.info.Dataset != "" {
		header = fmt.Sprintf("tabanon • %s • %s", tm.info.Dataset, tm.info.Method)
	}

	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n")

	if len(tm.info.Columns) > 0 {
		b.WriteString(mutedStyle.Render(strings.Join(tm.info.Columns, ", ")))
		b.WriteString("\n")
	}

	b.WriteString(tm.bar.ViewAs(tm.percent()))
	fmt.Fprintf(b, "  %s/%s rows\n", formatRows(tm.done), formatRows(tm.total))

	if tm.finished {
		b.WriteString(doneStyle.Render("done"))
		b.WriteString("\n\n")
	}
}
