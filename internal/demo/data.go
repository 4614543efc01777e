package demo

import (
	"fmt"
	"sort"

	"github.com/jasminelim327/autocomplete"
)

var datasets = map[string][]string{
	"fruits": {
		"Apple", "Apricot", "Avocado", "Banana", "Blackberry",
		"Blueberry", "Cherry", "Coconut", "Cranberry", "Date",
		"Dragonfruit", "Fig", "Grape", "Grapefruit", "Guava",
		"Kiwi", "Lemon", "Lime", "Lychee", "Mango",
		"Melon", "Nectarine", "Orange", "Papaya", "Passionfruit",
		"Peach", "Pear", "Pineapple", "Plum", "Pomegranate",
		"Raspberry", "Strawberry", "Tangerine", "Watermelon",
	},
	"cities": {
		"Amsterdam", "Athens", "Auckland", "Bangkok", "Barcelona",
		"Beijing", "Berlin", "Bogotá", "Boston", "Buenos Aires",
		"Cairo", "Cape Town", "Chicago", "Copenhagen", "Dublin",
		"Helsinki", "Hong Kong", "Istanbul", "Jakarta", "Kuala Lumpur",
		"Lagos", "Lisbon", "London", "Madrid", "Melbourne",
		"Mexico City", "Mumbai", "Nairobi", "New York", "Osaka",
		"Oslo", "Paris", "Prague", "Reykjavík", "Rome",
		"San Francisco", "Seoul", "Singapore", "Stockholm", "Sydney",
		"Tokyo", "Toronto", "Vancouver", "Vienna", "Warsaw",
	},
}

// Datasets returns the available dataset names, sorted.
func Datasets() []string {
	names := make([]string, 0, len(datasets))
	for name := range datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Options returns the option set for a named dataset.
func Options(name string) ([]autocomplete.String, error) {
	values, ok := datasets[name]
	if !ok {
		return nil, fmt.Errorf("unknown dataset %q (available: %v)", name, Datasets())
	}
	return autocomplete.Strings(values), nil
}
