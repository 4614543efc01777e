package autocomplete

import (
	"reflect"
	"testing"
)

func TestDefaultFilterEmptyQuery(t *testing.T) {
	options := Strings([]string{"Apple", "Banana", "Cherry"})

	got := DefaultFilter(options, "")

	if !reflect.DeepEqual(got, options) {
		t.Errorf("empty query returned %v, want all options in order", got)
	}
}

func TestDefaultFilter(t *testing.T) {
	options := Strings([]string{"Apple", "Banana", "Cherry", "apricot"})

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"substring middle", "an", []string{"Banana"}},
		{"case insensitive", "AP", []string{"Apple", "apricot"}},
		{"order preserved", "r", []string{"Cherry", "apricot"}},
		{"no match", "xyz", []string{}},
		{"full label", "cherry", []string{"Cherry"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultFilter(options, tt.query)
			labels := make([]string, 0, len(got))
			for _, o := range got {
				labels = append(labels, o.Label())
			}
			if !reflect.DeepEqual(labels, tt.want) {
				t.Errorf("DefaultFilter(%q) = %v, want %v", tt.query, labels, tt.want)
			}
		})
	}
}

func TestStringsAdapter(t *testing.T) {
	options := Strings([]string{"one", "two"})
	if len(options) != 2 || options[0].Label() != "one" || options[1].Label() != "two" {
		t.Errorf("Strings conversion wrong: %v", options)
	}
}
