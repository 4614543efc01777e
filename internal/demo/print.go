package demo

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

// PrintSelection pretty-prints the final selection as a table on stdout.
func PrintSelection(labels []string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println("Selected")

	if len(labels) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println("  none")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for i, label := range labels {
		tbl.AddRow(fmt.Sprintf("%d.", i+1), label)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
