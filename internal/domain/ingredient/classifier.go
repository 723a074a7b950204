// Package ingredient classifies free-text ingredient lists against a fixed
// denylist of substances that must be called out on product records.
package ingredient

import "strings"

// denylist holds the canonical names of flagged substances. Matching is a
// case-insensitive substring check, so "sodium benzoate solution" trips
// "Sodium Benzoate".
var denylist = []string{
	"SLS",
	"Sodium lauryl sulphate",
	"Sodium Lauryl Sulfate",
	"Paraben",
	"Propyl paraben",
	"Sodium Benzoate",
	"Ethyl paraben",
	"Methyl paraben",
}

// Result splits an ingredient list into the items considered safe and the
// canonical denylist names that were matched.
type Result struct {
	Active    []string
	Dangerous []string
}

// ActiveList renders the safe ingredients as a comma-joined list.
func (r Result) ActiveList() string { return strings.Join(r.Active, ", ") }

// DangerousList renders the matched denylist names as a comma-joined list.
func (r Result) DangerousList() string { return strings.Join(r.Dangerous, ", ") }

// Flagged reports whether any denylisted substance was matched.
func (r Result) Flagged() bool { return len(r.Dangerous) > 0 }

// Classify splits raw on commas and newlines, trims each item, and sorts
// items into safe and dangerous buckets. An item containing any denylist
// name (ignoring case) is dropped from the safe list; the canonical
// denylist name is recorded once, however many items matched it.
func Classify(raw string) Result {
	items := splitItems(raw)

	res := Result{
		Active:    make([]string, 0, len(items)),
		Dangerous: make([]string, 0),
	}
	seen := make(map[string]bool)

	for _, item := range items {
		matched := false
		for _, word := range denylist {
			if !strings.Contains(strings.ToLower(item), strings.ToLower(word)) {
				continue
			}
			matched = true
			if !seen[word] {
				seen[word] = true
				res.Dangerous = append(res.Dangerous, word)
			}
		}
		if !matched {
			res.Active = append(res.Active, item)
		}
	}
	return res
}

// Merge appends words to an existing comma-separated list, skipping ones
// already present (ignoring case).
func Merge(existing string, words []string) string {
	items := splitItems(existing)
	have := make(map[string]bool, len(items))
	for _, it := range items {
		have[strings.ToLower(it)] = true
	}
	for _, w := range words {
		if !have[strings.ToLower(w)] {
			have[strings.ToLower(w)] = true
			items = append(items, w)
		}
	}
	return strings.Join(items, ", ")
}

// splitItems breaks raw ingredient text into trimmed, non-empty items.
// Commas and newlines are both accepted as separators.
func splitItems(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})
	items := make([]string, 0, len(fields))
	for _, f := range fields {
		if trimmed := strings.TrimSpace(f); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
