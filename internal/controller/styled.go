package controller

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	sizeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	totalStyle  = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// StyledUI implements UI for terminals: colored output, and a pager for
// summaries taller than the screen when interactive.
type StyledUI struct {
	out         io.Writer
	errOut      io.Writer
	interactive bool
	now         func() time.Time
}

// NewStyledUI creates a new StyledUI.
func NewStyledUI(out, errOut io.Writer, interactive bool) *StyledUI {
	return &StyledUI{out: out, errOut: errOut, interactive: interactive, now: time.Now}
}

// DisplaySummary prints the size report with the total line highlighted.
func (s *StyledUI) DisplaySummary(ctx context.Context, summary string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lines := styleSummary(summary)

	model := newSummaryPagerModel(lines)
	model.height = terminalHeight(s.out)

	if !s.interactive || !model.needsPagination() {
		_, err := fmt.Fprint(s.out, strings.Join(lines, "\n")+"\n")
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(s.out), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}

	// The alt screen is gone once the pager quits; leave the total behind.
	_, err := fmt.Fprintln(s.out, lines[len(lines)-1])

	return err
}

// DisplayBuildError prints a build error in red.
func (s *StyledUI) DisplayBuildError(ctx context.Context, err error) {
	if ctx.Err() != nil || err == nil {
		return
	}

	_, _ = fmt.Fprintf(s.errOut, "%s %v\n", errorStyle.Render("✘ [ERROR]"), err)
}

// DisplayWatchStatus prints a timestamped watch event.
func (s *StyledUI) DisplayWatchStatus(ctx context.Context, status WatchStatus, detail string) {
	if ctx.Err() != nil {
		return
	}

	style := statusStyle
	if status == WatchFailed {
		style = errorStyle
	}

	line := fmt.Sprintf("%s %s", faintStyle.Render("["+s.now().Format(time.TimeOnly)+"]"), style.Render(status.String()))
	if detail != "" {
		line += " " + detail
	}

	_, _ = fmt.Fprintln(s.errOut, line)
}

func styleSummary(summary string) []string {
	lines := strings.Split(strings.TrimRight(summary, "\n"), "\n")

	for i, line := range lines {
		if i == len(lines)-1 {
			lines[i] = totalStyle.Render(line)
			continue
		}

		size, rest, found := strings.Cut(line, "kB")
		if found {
			lines[i] = sizeStyle.Render(size+"kB") + rest
		}
	}

	return lines
}

type pagerKeyMap struct {
	Quit     key.Binding
	Down     key.Binding
	Up       key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageDown key.Binding
	PageUp   key.Binding
}

var pagerKeys = pagerKeyMap{
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	PageDown: key.NewBinding(key.WithKeys("d", "pgdown")),
	PageUp:   key.NewBinding(key.WithKeys("u", "pgup")),
}

func (k pagerKeyMap) helpLine() string {
	parts := []string{}

	for _, binding := range []key.Binding{k.Up, k.Down, k.Top, k.Bottom, k.Quit} {
		help := binding.Help()
		parts = append(parts, help.Key+": "+help.Desc)
	}

	return strings.Join(parts, " | ")
}

// summaryPagerModel pages the summary rows; the total line stays pinned.
type summaryPagerModel struct {
	rows   []string
	total  string
	height int
	offset int
}

func newSummaryPagerModel(lines []string) summaryPagerModel {
	return summaryPagerModel{
		rows:  lines[:len(lines)-1],
		total: lines[len(lines)-1],
	}
}

func (pm summaryPagerModel) Init() tea.Cmd {
	return nil
}

func (pm summaryPagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.height = msg.Height
		pm.offset = min(pm.offset, pm.maxOffset())

		return pm, nil

	case tea.KeyMsg:
		return pm.handleKeyPress(msg)
	}

	return pm, nil
}

func (pm summaryPagerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, pagerKeys.Quit):
		return pm, tea.Quit
	case key.Matches(msg, pagerKeys.Down):
		pm.offset = min(pm.offset+1, pm.maxOffset())
	case key.Matches(msg, pagerKeys.Up):
		pm.offset = max(pm.offset-1, 0)
	case key.Matches(msg, pagerKeys.Top):
		pm.offset = 0
	case key.Matches(msg, pagerKeys.Bottom):
		pm.offset = pm.maxOffset()
	case key.Matches(msg, pagerKeys.PageDown):
		pm.offset = min(pm.offset+pm.rowsPerPage(), pm.maxOffset())
	case key.Matches(msg, pagerKeys.PageUp):
		pm.offset = max(pm.offset-pm.rowsPerPage(), 0)
	}

	return pm, nil
}

// rowsPerPage reserves lines for the total, a blank line, position and help.
func (pm summaryPagerModel) rowsPerPage() int {
	if pm.height == 0 {
		return 10
	}

	const reserved = 4

	return max(pm.height-reserved, 1)
}

func (pm summaryPagerModel) maxOffset() int {
	return max(len(pm.rows)-pm.rowsPerPage(), 0)
}

func (pm summaryPagerModel) needsPagination() bool {
	return pm.height > 0 && len(pm.rows) > pm.rowsPerPage()
}

func (pm summaryPagerModel) View() string {
	var b strings.Builder

	end := min(pm.offset+pm.rowsPerPage(), len(pm.rows))

	for _, row := range pm.rows[pm.offset:end] {
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString(pm.total)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s\n", faintStyle.Render(fmt.Sprintf("Rows %d-%d of %d | %s",
		pm.offset+1, end, len(pm.rows), pagerKeys.helpLine())))

	return b.String()
}
