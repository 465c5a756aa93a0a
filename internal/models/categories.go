package models

import (
	"sort"
	"strings"
)

// categoryQueries maps each recognized category key to the search seed term
// used against the extraction provider. The key set is closed: unknown
// categories are rejected, never silently defaulted.
var categoryQueries = map[string]string{
	"music":      "latest music videos",
	"pop":        "pop music hits",
	"rock":       "rock music songs",
	"hip_hop":    "hip hop rap music",
	"electronic": "electronic dance music",
	"indie":      "indie alternative music",
	"classical":  "classical music",
	"jazz":       "jazz music",
	"country":    "country music",
	"rnb":        "r&b soul music",
}

// CategoryQuery returns the seed search term for a category key
// (case-insensitive) and whether the key is recognized.
func CategoryQuery(category string) (string, bool) {
	q, ok := categoryQueries[strings.ToLower(strings.TrimSpace(category))]
	return q, ok
}

// Categories returns the sorted list of recognized category keys.
func Categories() []string {
	keys := make([]string, 0, len(categoryQueries))
	for k := range categoryQueries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
