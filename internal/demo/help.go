package demo

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"github.com/jasminelim327/autocomplete"
)

// helpPagerMsg contains the result of a help pager command.
type helpPagerMsg struct {
	err error
}

// helpOps pages help content through ov, handing the terminal back and
// forth with the running Bubble Tea program.
type helpOps struct {
	program *tea.Program
}

// showInPager releases the terminal, runs ov over the content and
// restores the terminal afterwards, even when ov fails.
func (h *helpOps) showInPager(content string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Give ov a moment to fully exit before taking the terminal back.
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	cfg := oviewer.NewConfig()
	cfg.IsWriteOriginal = false
	root.SetConfig(cfg)

	return root.Run()
}

// renderHelp builds the pager content from the widget's key map plus the
// demo's own keys.
func renderHelp(keys autocomplete.KeyMap) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("Autocomplete Demo Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Widget"))
	help.WriteString("\n")
	for _, column := range keys.FullHelp() {
		for _, binding := range column {
			h := binding.Help()
			help.WriteString(fmt.Sprintf("  %-12s %s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
		}
	}
	help.WriteString(fmt.Sprintf("  %-12s %s\n", keyStyle.Render("type"), descStyle.Render("filter the options")))
	help.WriteString(fmt.Sprintf("  %-12s %s\n", keyStyle.Render("click"), descStyle.Render("select an option or dismiss a chip")))

	help.WriteString(sectionStyle.Render("Demo"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %-12s %s\n", keyStyle.Render("?"), descStyle.Render("show this help (with an empty query)")))
	help.WriteString(fmt.Sprintf("  %-12s %s\n", keyStyle.Render("ctrl+c"), descStyle.Render("quit and print the selection")))

	return help.String()
}
