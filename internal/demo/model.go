// Package demo hosts the autocomplete widget in a small Bubble Tea
// application: it wires mouse support, a pager-backed help screen and a
// status log, and prints the final selection on exit.
package demo

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jasminelim327/autocomplete"
	"github.com/jasminelim327/autocomplete/internal/config"
)

const (
	// widgetOriginY is the screen row the widget starts on: the title
	// line and one blank line sit above it. The widget needs this for
	// mouse hit-testing.
	widgetOriginY = 2

	maxEvents = 4
	maxWidth  = 60
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	subtleStyle = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
)

// Model is the demo application state.
type Model struct {
	widget autocomplete.Model[autocomplete.String]
	cfg    *config.Config
	help   *helpOps

	status string
	events []string
	width  int
}

// New builds the demo model from a loaded configuration.
func New(cfg *config.Config) (Model, error) {
	options, err := Options(cfg.Dataset)
	if err != nil {
		return Model{}, err
	}

	w := autocomplete.New(options)
	w.Multiple = cfg.Multiple
	w.Async = cfg.Async
	w.SetDebounceDelay(time.Duration(cfg.DebounceMs) * time.Millisecond)
	w.SetMaxVisible(cfg.MaxVisible)
	w.Input.Placeholder = "type to search"
	w.SetPosition(0, widgetOriginY)
	w.Focus()

	return Model{
		widget: w,
		cfg:    cfg,
		help:   &helpOps{},
		status: "nothing selected",
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC:
			return m, tea.Quit
		case msg.String() == "?" && m.widget.Query() == "":
			return m, m.helpCmd()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		w := msg.Width - 2
		if w > maxWidth {
			w = maxWidth
		}
		m.widget.SetWidth(w)
		return m, nil

	case autocomplete.ChangedMsg[autocomplete.String]:
		m.status = fmt.Sprintf("%d selected", len(msg.Selected))
		m.pushEvent(fmt.Sprintf("toggled %s", msg.Picked.Label()))
		return m, nil

	case autocomplete.InputChangedMsg:
		m.pushEvent(fmt.Sprintf("typed %q", msg.Value))
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("help failed: %v", msg.err)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.widget, cmd = m.widget.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("autocomplete demo"))
	b.WriteString(subtleStyle.Render(" · " + m.cfg.Dataset + m.modeSuffix()))
	b.WriteString("\n\n")
	b.WriteString(m.widget.View())
	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	for _, e := range m.events {
		b.WriteString(subtleStyle.Render("  " + e))
		b.WriteString("\n")
	}
	b.WriteString(subtleStyle.Render("? help · ctrl+c quit"))
	return b.String()
}

// Selection returns the labels of the picked options in pick order.
func (m Model) Selection() []string {
	selected := m.widget.Value()
	labels := make([]string, len(selected))
	for i, s := range selected {
		labels[i] = s.Label()
	}
	return labels
}

func (m Model) modeSuffix() string {
	var parts []string
	if !m.cfg.Multiple {
		parts = append(parts, "single")
	}
	if m.cfg.Async {
		parts = append(parts, fmt.Sprintf("async %dms", m.cfg.DebounceMs))
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

func (m *Model) pushEvent(e string) {
	m.events = append(m.events, e)
	if len(m.events) > maxEvents {
		m.events = m.events[len(m.events)-maxEvents:]
	}
}

func (m Model) helpCmd() tea.Cmd {
	content := renderHelp(m.widget.KeyMap)
	ops := m.help
	return func() tea.Msg {
		return helpPagerMsg{err: ops.showInPager(content)}
	}
}

// Run starts the demo program and prints the final selection once the
// user quits.
func Run(cfg *config.Config) error {
	m, err := New(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	m.help.program = p

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("demo program failed: %w", err)
	}

	if fm, ok := final.(Model); ok {
		PrintSelection(fm.Selection())
	}
	return nil
}
