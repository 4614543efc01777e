// Package autocomplete provides a searchable, optionally multi-select
// dropdown component for Bubble Tea programs. It wires a text input, a
// pluggable filter over a candidate set, debounced async filtering, chip
// rendering for picked options, and keyboard plus mouse navigation.
package autocomplete

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// DefaultDebounceDelay is how long async input must be quiet before a
	// filter pass runs.
	DefaultDebounceDelay = 600 * time.Millisecond

	// DefaultMaxVisible caps the dropdown window before it scrolls.
	DefaultMaxVisible = 8

	defaultWidth = 40
)

// Model is the widget state. Create one with New, feed it messages with
// Update, and render it with View. The zero value is not usable.
//
// Exported fields may be adjusted freely between updates. Options, the
// selection, the debounce delay, layout and geometry go through setters
// because changing them has side effects on the filtered set.
type Model[T Option] struct {
	// Input is the embedded text field. Its Placeholder, Prompt and
	// CharLimit may be configured directly.
	Input textinput.Model

	// Spinner renders the loading indicator in async mode.
	Spinner spinner.Model

	KeyMap KeyMap
	Styles *Styles

	// Label and Description are static captions above the field.
	Label       string
	Description string

	// Disabled makes the widget inert: updates are ignored and the
	// dropdown never shows.
	Disabled bool

	// Multiple toggles selection between toggle-membership and
	// replace-wholesale semantics.
	Multiple bool

	// Async routes filtering through the debounce gate instead of
	// running it on every keystroke.
	Async bool

	// EmptyMessage is the placeholder line shown when no option matches.
	EmptyMessage string

	// Filter overrides the default label substring match. It is called
	// verbatim with the full option set and the current query.
	Filter Filter[T]

	// RenderOption overrides the default display of an option row. The
	// returned string is used as-is, so the caller owns its width.
	RenderOption func(T) string

	options  []T
	filtered []T
	selected []T

	open        bool
	highlighted int
	loading     bool

	delay      time.Duration
	maxVisible int
	offset     int

	deb debouncer

	width            int
	originX, originY int
}

// New creates a widget over the given candidate set. Multi-select is the
// default mode.
func New[T Option](options []T) Model[T] {
	ti := textinput.New()
	ti.Prompt = "> "

	styles := NewStyles()
	sp := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	sp.Style = styles.Loading

	return Model[T]{
		Input:        ti,
		Spinner:      sp,
		KeyMap:       DefaultKeyMap(),
		Styles:       styles,
		Multiple:     true,
		EmptyMessage: "no matches",
		options:      options,
		filtered:     options,
		highlighted:  -1,
		delay:        DefaultDebounceDelay,
		maxVisible:   DefaultMaxVisible,
		width:        defaultWidth,
	}
}

// Focus gives the widget keyboard focus and opens the dropdown.
func (m *Model[T]) Focus() tea.Cmd {
	if m.Disabled {
		return nil
	}
	cmd := m.Input.Focus()
	m.openDropdown()
	return cmd
}

// Blur removes focus, closes the dropdown and cancels any pending
// debounced filter pass so it cannot fire into a widget nobody is using.
func (m *Model[T]) Blur() {
	m.Input.Blur()
	m.open = false
	m.deb.cancel()
	m.loading = false
}

// Focused reports whether the widget has keyboard focus.
func (m Model[T]) Focused() bool { return m.Input.Focused() }

// SetOptions replaces the candidate set. In sync mode the filtered set is
// recomputed immediately so it stays consistent with the new candidates;
// in async mode the next scheduled pass picks them up.
func (m *Model[T]) SetOptions(options []T) {
	m.options = options
	if m.Async {
		return
	}
	m.filtered = m.runFilter(m.Input.Value())
	m.loading = false
}

// Options returns the full candidate set.
func (m Model[T]) Options() []T { return m.options }

// SetDebounceDelay changes the async quiet interval. In sync mode the
// change also triggers an immediate filter pass.
func (m *Model[T]) SetDebounceDelay(d time.Duration) {
	m.delay = d
	if m.Async {
		return
	}
	m.filtered = m.runFilter(m.Input.Value())
	m.loading = false
}

// DebounceDelay returns the configured async quiet interval.
func (m Model[T]) DebounceDelay() time.Duration { return m.delay }

// SetValue replaces the selection from outside. Single-select keeps at
// most the first element.
func (m *Model[T]) SetValue(selected []T) {
	sel := append([]T(nil), selected...)
	if !m.Multiple && len(sel) > 1 {
		sel = sel[:1]
	}
	m.selected = sel
}

// Value returns a copy of the current selection in pick order.
func (m Model[T]) Value() []T {
	return append([]T(nil), m.selected...)
}

// Filtered returns the options currently eligible for display.
func (m Model[T]) Filtered() []T { return m.filtered }

// Query returns the text the user has typed.
func (m Model[T]) Query() string { return m.Input.Value() }

// Open reports whether the dropdown panel is visible.
func (m Model[T]) Open() bool { return m.open }

// Loading reports whether a debounced filter pass is outstanding.
func (m Model[T]) Loading() bool { return m.loading }

// Highlighted returns the keyboard cursor into the filtered set, -1 when
// nothing is highlighted.
func (m Model[T]) Highlighted() int { return m.highlighted }

// SetMaxVisible caps how many rows the dropdown shows at once; zero or
// negative means unbounded.
func (m *Model[T]) SetMaxVisible(n int) { m.maxVisible = n }

// SetWidth sets the rendered width of the input line and panel.
func (m *Model[T]) SetWidth(w int) {
	if w > 0 {
		m.width = w
	}
}

// Width returns the rendered width.
func (m Model[T]) Width() int { return m.width }

// SetPosition tells the widget where its first line sits on screen so
// mouse presses can be hit-tested against chips, input and panel rows.
func (m *Model[T]) SetPosition(x, y int) {
	m.originX = x
	m.originY = y
}

// Update drives the widget state machine.
func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	if m.Disabled {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case filterTickMsg:
		if !m.deb.accept(msg) {
			return m, nil
		}
		m.filtered = m.runFilter(msg.query)
		m.loading = false
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m Model[T]) handleKey(msg tea.KeyMsg) (Model[T], tea.Cmd) {
	if !m.Input.Focused() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.KeyMap.Close):
		m.open = false
		return m, nil

	case key.Matches(msg, m.KeyMap.Down):
		if !m.open {
			m.openDropdown()
		}
		if m.highlighted < len(m.filtered)-1 {
			m.highlighted++
		}
		m.scrollToHighlight()
		return m, nil

	case key.Matches(msg, m.KeyMap.Up):
		if !m.open {
			m.openDropdown()
		}
		if m.highlighted > 0 {
			m.highlighted--
		}
		m.scrollToHighlight()
		return m, nil

	case key.Matches(msg, m.KeyMap.Select):
		if !m.open {
			m.openDropdown()
			return m, nil
		}
		// The highlight is deliberately left alone when the filtered set
		// shrinks, so it can point past the end here.
		if m.highlighted < 0 || m.highlighted >= len(m.filtered) {
			return m, nil
		}
		return m.pick(m.filtered[m.highlighted])

	case key.Matches(msg, m.KeyMap.RemoveLast) && m.Input.Value() == "":
		if !m.open {
			m.openDropdown()
		}
		if m.Multiple && len(m.selected) > 0 {
			return m.pick(m.selected[len(m.selected)-1])
		}
		return m, nil
	}

	before := m.Input.Value()
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	if !m.open {
		m.openDropdown()
	}
	after := m.Input.Value()
	if after == before {
		return m, cmd
	}

	cmds := []tea.Cmd{cmd, emitInputChanged(after)}
	if m.Async {
		wasLoading := m.loading
		m.loading = true
		cmds = append(cmds, m.deb.schedule(after, m.delay))
		if !wasLoading {
			cmds = append(cmds, m.Spinner.Tick)
		}
	} else {
		m.filtered = m.runFilter(after)
		m.loading = false
	}
	return m, tea.Batch(cmds...)
}

func (m Model[T]) handleMouse(msg tea.MouseMsg) (Model[T], tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	x := msg.X - m.originX
	y := msg.Y - m.originY

	if m.chipRows() == 1 && y == m.headerRows() {
		for i, span := range m.chipSpans() {
			if x == span.dismiss {
				return m.pick(m.selected[i])
			}
		}
		return m, nil
	}

	if y == m.inputRow() && x >= 0 && x < m.width {
		if !m.open {
			m.openDropdown()
		}
		return m, nil
	}

	if !m.open {
		return m, nil
	}

	top := m.inputRow() + 1
	bottom := top + m.panelInnerLines() + 1
	if y < top || y > bottom || x < 0 || x >= m.width {
		// Press outside both the input and the panel: close, leaving the
		// selection and query untouched.
		m.open = false
		return m, nil
	}
	if y > top && y < bottom && x >= 1 && x < m.width-1 {
		start, end := m.visibleRange()
		idx := start + (y - top - 1)
		if len(m.filtered) > 0 && idx < end {
			return m.pick(m.filtered[idx])
		}
	}
	return m, nil
}

// pick applies a selection chosen via Enter, a press on an option row, or
// a chip dismissal. The query is cleared without an InputChangedMsg and
// the filtered set is rebuilt against the empty query.
func (m Model[T]) pick(option T) (Model[T], tea.Cmd) {
	if m.Multiple {
		m.selected = toggle(m.selected, option)
	} else {
		m.selected = []T{option}
		m.open = false
	}
	m.Input.Reset()
	m.deb.cancel()
	m.loading = false
	m.filtered = m.runFilter("")
	return m, m.changed(option)
}

// toggle flips membership of option in selected, appending when absent.
func toggle[T Option](selected []T, option T) []T {
	for i, s := range selected {
		if s == option {
			return append(selected[:i:i], selected[i+1:]...)
		}
	}
	return append(selected, option)
}

// changed snapshots the post-change selection for the emitted message.
func (m Model[T]) changed(picked T) tea.Cmd {
	selected := append([]T(nil), m.selected...)
	return func() tea.Msg {
		return ChangedMsg[T]{Selected: selected, Picked: picked}
	}
}

func emitInputChanged(value string) tea.Cmd {
	return func() tea.Msg {
		return InputChangedMsg{Value: value}
	}
}

func (m Model[T]) runFilter(query string) []T {
	if m.Filter != nil {
		return m.Filter(m.options, query)
	}
	return DefaultFilter(m.options, query)
}

func (m *Model[T]) openDropdown() {
	m.open = true
	m.highlighted = -1
	m.offset = 0
}

// scrollToHighlight keeps the highlighted row inside the visible window.
func (m *Model[T]) scrollToHighlight() {
	if m.maxVisible <= 0 || m.highlighted < 0 {
		return
	}
	if m.highlighted < m.offset {
		m.offset = m.highlighted
	}
	if m.highlighted >= m.offset+m.maxVisible {
		m.offset = m.highlighted - m.maxVisible + 1
	}
}

func (m Model[T]) isSelected(option T) bool {
	for _, s := range m.selected {
		if s == option {
			return true
		}
	}
	return false
}
