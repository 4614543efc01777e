package autocomplete

// ChangedMsg is emitted through the returned command after every
// selection change. Selected is the sequence after the change was
// applied, so it always agrees with the rendered chips; Picked is the
// option that was chosen or toggled.
type ChangedMsg[T Option] struct {
	Selected []T
	Picked   T
}

// InputChangedMsg is emitted after every keystroke that changes the
// query text, independent of filtering. The programmatic clear that
// follows a selection does not emit one.
type InputChangedMsg struct {
	Value string
}

// filterTickMsg carries a scheduled filter pass back into Update.
type filterTickMsg struct {
	ticket uint64
	query  string
}
