package autocomplete

// Option is the contract candidate items must satisfy. Label is used for
// display and for the default filter match; equality of the concrete type
// decides selection membership, so two options with the same label but
// different identity are distinct entries.
type Option interface {
	comparable
	Label() string
}

// String adapts a plain string to the Option contract.
type String string

// Label returns the string itself.
func (s String) Label() string { return string(s) }

// Strings converts a slice of plain strings into options.
func Strings(values []string) []String {
	out := make([]String, len(values))
	for i, v := range values {
		out[i] = String(v)
	}
	return out
}
