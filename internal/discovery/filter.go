package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters test files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters test files by name pattern using wildcard matching.
// Supports patterns like "test_smoke.py", "*smoke*" or plain substrings.
func (f *Filter) FilterByName(tests []string, pattern string) []string {
	if pattern == "" {
		return tests
	}

	var filtered []string
	for _, test := range tests {
		if matchesName(filepath.Base(test), pattern) {
			filtered = append(filtered, test)
		}
	}
	return filtered
}

func matchesName(name, pattern string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	// No wildcards: plain substring match.
	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// Fall back to ordered substring matching for patterns like "*checkout*".
	parts := strings.Split(pattern, "*")
	hasNonEmpty := false
	rest := name
	for _, part := range parts {
		if part == "" {
			continue
		}
		hasNonEmpty = true
		idx := strings.Index(rest, part)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(part):]
	}
	return hasNonEmpty
}
