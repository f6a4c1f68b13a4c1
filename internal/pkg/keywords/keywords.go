// Package keywords produces the prefix keyword sets that back type-ahead
// search. Everything here is pure string work.
package keywords

import (
	"sort"
	"strings"
)

// Generate returns every prefix (length >= 1) of each lowercased
// whitespace-separated token of s, deduplicated and sorted.
// Generate("Blue Sky") = [b bl blu blue s sk sky].
func Generate(s string) []string {
	seen := make(map[string]struct{})
	for _, token := range strings.Fields(strings.ToLower(s)) {
		runes := []rune(token)
		for i := 1; i <= len(runes); i++ {
			seen[string(runes[:i])] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// GeneratePhrase is Generate plus the full lowercased input, so multi-word
// titles remain findable as a whole.
func GeneratePhrase(s string) []string {
	out := Generate(s)
	phrase := strings.ToLower(strings.TrimSpace(s))
	if phrase == "" {
		return out
	}
	for _, k := range out {
		if k == phrase {
			return out
		}
	}
	out = append(out, phrase)
	sort.Strings(out)
	return out
}

// Merge combines keyword sets, deduplicated and sorted.
func Merge(sets ...[]string) []string {
	seen := make(map[string]struct{})
	for _, set := range sets {
		for _, k := range set {
			seen[k] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
