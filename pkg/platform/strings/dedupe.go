// Package strings provides string manipulation utilities.
package strings

import (
	"strings"
)

// DedupeAndTrim removes duplicates and empty strings from a slice,
// trimming whitespace from each element. Order is preserved.
//
// Example:
//
//	DedupeAndTrim([]string{"  JP ", "DE", "JP", "", "  "})
//	// Returns: []string{"JP", "DE"}
func DedupeAndTrim(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; !ok {
			seen[trimmed] = struct{}{}
			result = append(result, trimmed)
		}
	}

	return result
}

// SplitList splits a separated list such as a "codes=JP,DE" query value and
// applies DedupeAndTrim. Repeated query parameters may be passed together.
// Case is preserved: "jp" and "JP" are distinct entries.
func SplitList(sep string, values ...string) []string {
	var parts []string
	for _, v := range values {
		parts = append(parts, strings.Split(v, sep)...)
	}
	return DedupeAndTrim(parts)
}
