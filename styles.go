package autocomplete

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the widget. The chip and
// checkbox styles must not change the rendered width of their text, since
// mouse hit-testing derives chip geometry from the plain labels.
type Styles struct {
	Label       lipgloss.Style
	Description lipgloss.Style
	Chip        lipgloss.Style
	ChipDismiss lipgloss.Style
	Panel       lipgloss.Style
	Checked     lipgloss.Style
	Unchecked   lipgloss.Style
	Highlight   lipgloss.Style
	Empty       lipgloss.Style
	Suggestion  lipgloss.Style
	Loading     lipgloss.Style
	Disabled    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Description: lipgloss.NewStyle().Faint(true),
		Chip: lipgloss.NewStyle().
			Foreground(lipgloss.Color("78")), // green
		ChipDismiss: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")), // red
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")),
		Checked:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Unchecked:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Highlight:  lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Empty:      lipgloss.NewStyle().Faint(true).Italic(true),
		Suggestion: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Loading:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Disabled:   lipgloss.NewStyle().Faint(true),
	}
}
