package autocomplete

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// debouncer coalesces rapid input changes into a single scheduled filter
// pass. Scheduling bumps a monotonic ticket and tags the timer command
// with it; only a fired message carrying the live ticket is accepted, so
// superseded passes are dead the moment a newer one is scheduled.
// Canceling with nothing pending, or after the timer fired, is a no-op.
type debouncer struct {
	ticket  uint64
	pending bool
}

// schedule cancels any pending pass and arranges a new one for query
// after delay.
func (d *debouncer) schedule(query string, delay time.Duration) tea.Cmd {
	d.ticket++
	d.pending = true
	ticket := d.ticket
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return filterTickMsg{ticket: ticket, query: query}
	})
}

// cancel invalidates whatever is pending.
func (d *debouncer) cancel() {
	d.ticket++
	d.pending = false
}

// accept reports whether msg is the live scheduled pass and, if so,
// consumes it.
func (d *debouncer) accept(msg filterTickMsg) bool {
	if !d.pending || msg.ticket != d.ticket {
		return false
	}
	d.pending = false
	return true
}
