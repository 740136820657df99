package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sp80808/contextual-prompts/internal/adapters/driving/tui/styles"
	"github.com/sp80808/contextual-prompts/internal/core/domain"
	"github.com/sp80808/contextual-prompts/internal/core/ports/driving"
	"github.com/sp80808/contextual-prompts/internal/core/services"
)

// ResultsMsg carries the outcome of a lookup.
// Seq identifies the query that produced it so stale results can be dropped.
type ResultsMsg struct {
	Seq     int
	Results []domain.PromptRecord
	Err     error
}

// DatasetChangedMsg reports that the dataset file changed on disk.
type DatasetChangedMsg struct{}

// Model is the interactive lookup screen: a query input above a ranked list.
type Model struct {
	ctx      context.Context
	service  driving.LookupService
	opts     domain.LookupOptions
	styles   *styles.Styles
	input    textinput.Model
	results  []domain.PromptRecord
	selected int
	err      error
	seq      int
	width    int
}

// NewModel creates a lookup model. A nil styles uses the default theme.
func NewModel(service driving.LookupService, opts domain.LookupOptions, s *styles.Styles) *Model {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Describe your task..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &Model{
		ctx:     context.Background(),
		service: service,
		opts:    opts,
		styles:  s,
		input:   ti,
		width:   80,
	}
}

// WithContext sets the context passed to lookups.
func (m *Model) WithContext(ctx context.Context) *Model {
	m.ctx = ctx
	return m
}

// Init starts the cursor blinking.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses, window resizes, lookup results and dataset changes.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyUp:
			m.moveSelection(-1)
			return m, nil
		case tea.KeyDown:
			m.moveSelection(1)
			return m, nil
		default:
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			return m, tea.Batch(cmd, m.lookup())
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		inputWidth := msg.Width - 10
		if inputWidth < 20 {
			inputWidth = 20
		}
		m.input.Width = inputWidth
		return m, nil

	case ResultsMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		m.results = msg.Results
		m.err = msg.Err
		if m.selected >= len(m.results) {
			m.selected = 0
		}
		return m, nil

	case DatasetChangedMsg:
		return m, m.lookup()
	}

	return m, nil
}

// lookup returns a command that runs the current query.
func (m *Model) lookup() tea.Cmd {
	m.seq++
	seq := m.seq
	query := m.input.Value()
	ctx, service, opts := m.ctx, m.service, m.opts

	return func() tea.Msg {
		// The service reports a missing file on the log and returns nothing,
		// which would read as "no matches" here.
		if _, ok := services.ResolveDatasetPath([]string{opts.DatasetPath}); !ok {
			return ResultsMsg{Seq: seq, Err: fmt.Errorf("%w: %s not found", domain.ErrDatasetUnavailable, opts.DatasetPath)}
		}
		results, err := service.Lookup(ctx, query, opts)
		return ResultsMsg{Seq: seq, Results: results, Err: err}
	}
}

func (m *Model) moveSelection(delta int) {
	if len(m.results) == 0 {
		return
	}
	m.selected = (m.selected + delta + len(m.results)) % len(m.results)
}

// View renders the input, the result list and key hints.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("ctxprompts"))
	b.WriteString("\n\n")
	label := m.styles.Label.Render("Context: ")
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, label, m.styles.InputField.Render(m.input.View())))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(m.styles.Error.Render("Error: " + m.err.Error()))
	case m.input.Value() == "":
		b.WriteString(m.styles.Muted.Render("Type to search prompts."))
	case len(m.results) == 0:
		b.WriteString(m.styles.Muted.Render("No relevant prompts found for your query."))
	default:
		b.WriteString(m.viewResults())
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.Help.Render("↑/↓ select • esc quit"))
	return b.String()
}

func (m *Model) viewResults() string {
	lines := make([]string, 0, len(m.results)+2)
	for i := range m.results {
		line := fmt.Sprintf("%d. %s", i+1, m.results[i].Act)
		if i == m.selected {
			lines = append(lines, m.styles.Selected.Render("> "+line))
			continue
		}
		lines = append(lines, m.styles.Normal.Render("  "+line))
	}

	wrap := m.width - 4
	if wrap < 20 {
		wrap = 20
	}
	body := lipgloss.NewStyle().Width(wrap).Render(m.results[m.selected].Prompt)
	lines = append(lines, "", m.styles.Muted.Render(body))
	return strings.Join(lines, "\n")
}

// Query returns the current input value.
func (m *Model) Query() string {
	return m.input.Value()
}

// Results returns the records currently displayed.
func (m *Model) Results() []domain.PromptRecord {
	return m.results
}

// SelectedIndex returns the highlighted result index.
func (m *Model) SelectedIndex() int {
	return m.selected
}

// Err returns the last lookup error.
func (m *Model) Err() error {
	return m.err
}
