package autocomplete

import (
	"testing"
	"time"
)

func TestDebouncerLastScheduleWins(t *testing.T) {
	var d debouncer

	d.schedule("a", time.Minute)
	first := filterTickMsg{ticket: d.ticket, query: "a"}
	d.schedule("ab", time.Minute)
	second := filterTickMsg{ticket: d.ticket, query: "ab"}

	if d.accept(first) {
		t.Error("superseded pass was accepted")
	}
	if !d.accept(second) {
		t.Error("live pass was rejected")
	}
	if d.accept(second) {
		t.Error("already-fired pass was accepted twice")
	}
}

func TestDebouncerCancel(t *testing.T) {
	var d debouncer

	// canceling with nothing pending is a no-op
	d.cancel()

	d.schedule("query", time.Minute)
	pending := filterTickMsg{ticket: d.ticket, query: "query"}
	d.cancel()

	if d.accept(pending) {
		t.Error("canceled pass was accepted")
	}
}

func TestDebouncerTickDelivers(t *testing.T) {
	var d debouncer

	cmd := d.schedule("apple", 5*time.Millisecond)
	raw := cmd()
	msg, ok := raw.(filterTickMsg)
	if !ok {
		t.Fatalf("tick command returned %T, want filterTickMsg", raw)
	}
	if msg.query != "apple" {
		t.Errorf("tick carried query %q, want %q", msg.query, "apple")
	}
	if !d.accept(msg) {
		t.Error("fired pass was rejected")
	}
}
