// Package tags derives category tags from the free-text tag field of
// community posts. Tags are never stored on their own; the facet list
// is recomputed from post rows on every read.
package tags

import (
	"sort"
	"strings"
	"unicode"
)

const Marker = "#"

// Extract splits s on runs of whitespace and commas and keeps the
// tokens that start with the marker and carry at least one character
// after it. Order of first appearance is preserved, duplicates removed.
// No normalization: differently cased tags stay distinct.
func Extract(s string) []string {
	// Full-width spaces (U+3000) are common in Japanese input and
	// separate tags just like ASCII whitespace.
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	seen := map[string]bool{}
	var out []string
	for _, f := range fields {
		if !strings.HasPrefix(f, Marker) || len(f) <= len(Marker) {
			continue
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// Facet unions Extract over every post's tag field into the global
// "available tags" list, deduplicated and sorted for stable display.
func Facet(tagFields []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, tf := range tagFields {
		for _, tag := range Extract(tf) {
			if seen[tag] {
				continue
			}
			seen[tag] = true
			out = append(out, tag)
		}
	}
	sort.Strings(out)
	return out
}
