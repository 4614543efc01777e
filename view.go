package autocomplete

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jasminelim327/autocomplete/internal/suggest"
)

const (
	dismissGlyph = "✕"
	checkedBox   = "[x]"
	uncheckedBox = "[ ]"
)

// View renders the widget: captions, chips, the input line and, while
// open, the dropdown panel.
func (m Model[T]) View() string {
	var b strings.Builder
	if m.Label != "" {
		b.WriteString(m.Styles.Label.Render(m.Label))
		b.WriteString("\n")
	}
	if m.Description != "" {
		b.WriteString(m.Styles.Description.Render(m.Description))
		b.WriteString("\n")
	}
	if m.chipRows() == 1 {
		b.WriteString(m.chipsView())
		b.WriteString("\n")
	}
	b.WriteString(m.inputView())
	if m.open && !m.Disabled {
		b.WriteString("\n")
		b.WriteString(m.panelView())
	}
	return b.String()
}

func (m Model[T]) chipsView() string {
	parts := make([]string, 0, len(m.selected))
	for _, s := range m.selected {
		parts = append(parts, m.Styles.Chip.Render(s.Label())+" "+m.Styles.ChipDismiss.Render(dismissGlyph))
	}
	return strings.Join(parts, " ")
}

func (m Model[T]) inputView() string {
	if m.Disabled {
		return m.Styles.Disabled.Render(m.Input.Prompt + m.Input.Value())
	}
	view := m.Input.View()
	if m.loading {
		view += " " + m.Spinner.View()
	}
	return view
}

func (m Model[T]) panelView() string {
	inner := m.width - 2
	if inner < 8 {
		inner = 8
	}
	var rows []string
	if len(m.filtered) == 0 {
		rows = append(rows, m.Styles.Empty.Render(padRight(runewidth.Truncate(m.EmptyMessage, inner, "…"), inner)))
		if s := m.suggestion(); s != "" {
			hint := "did you mean " + s + "?"
			rows = append(rows, m.Styles.Suggestion.Render(padRight(runewidth.Truncate(hint, inner, "…"), inner)))
		}
	} else {
		start, end := m.visibleRange()
		for i := start; i < end; i++ {
			rows = append(rows, m.optionRow(i, inner))
		}
	}
	return m.Styles.Panel.Width(inner).Render(strings.Join(rows, "\n"))
}

func (m Model[T]) optionRow(i, inner int) string {
	opt := m.filtered[i]
	selected := m.isSelected(opt)
	box := uncheckedBox
	if selected {
		box = checkedBox
	}

	text := opt.Label()
	if m.RenderOption != nil {
		text = m.RenderOption(opt)
	} else {
		text = runewidth.Truncate(text, inner-len(box)-1, "…")
	}

	if i == m.highlighted {
		return m.Styles.Highlight.Render(padRight(box+" "+text, inner))
	}
	boxStyle := m.Styles.Unchecked
	if selected {
		boxStyle = m.Styles.Checked
	}
	return boxStyle.Render(box) + " " + text
}

// suggestion returns a nearest-label hint for the empty panel, or "".
func (m Model[T]) suggestion() string {
	query := m.Input.Value()
	if query == "" {
		return ""
	}
	labels := make([]string, len(m.options))
	for i, o := range m.options {
		labels[i] = o.Label()
	}
	nearest, ok := suggest.Nearest(labels, query)
	if !ok {
		return ""
	}
	return nearest
}

// Geometry helpers. The mouse handler replays exactly the layout View
// produces, so these are the single source of truth for both.

func (m Model[T]) headerRows() int {
	n := 0
	if m.Label != "" {
		n++
	}
	if m.Description != "" {
		n++
	}
	return n
}

func (m Model[T]) chipRows() int {
	if m.Multiple && len(m.selected) > 0 {
		return 1
	}
	return 0
}

func (m Model[T]) inputRow() int {
	return m.headerRows() + m.chipRows()
}

// chipSpan records the horizontal extent of one rendered chip and the
// cell occupied by its dismiss glyph.
type chipSpan struct {
	start   int
	dismiss int
	end     int
}

func (m Model[T]) chipSpans() []chipSpan {
	spans := make([]chipSpan, 0, len(m.selected))
	x := 0
	for _, s := range m.selected {
		w := runewidth.StringWidth(s.Label())
		spans = append(spans, chipSpan{start: x, dismiss: x + w + 1, end: x + w + 2})
		x += w + 3
	}
	return spans
}

// visibleRange returns the half-open window of filtered indices the panel
// shows, honoring the scroll offset and the max-visible cap.
func (m Model[T]) visibleRange() (int, int) {
	if len(m.filtered) == 0 {
		return 0, 0
	}
	start := m.offset
	if start >= len(m.filtered) {
		start = 0
	}
	end := len(m.filtered)
	if m.maxVisible > 0 && start+m.maxVisible < end {
		end = start + m.maxVisible
	}
	return start, end
}

func (m Model[T]) panelInnerLines() int {
	if len(m.filtered) > 0 {
		start, end := m.visibleRange()
		return end - start
	}
	if m.suggestion() != "" {
		return 2
	}
	return 1
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
