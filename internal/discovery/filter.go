package discovery

import (
	"iter"
	"path/filepath"
	"strings"
)

// Filter filters test cases by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// Match reports whether a test-case name matches pattern.
// Supports glob patterns like "it-*" or "*deploy*"; a pattern without
// wildcards matches any name containing it. An empty pattern matches everything.
func (f *Filter) Match(name, pattern string) bool {
	if pattern == "" {
		return true
	}

	for _, candidate := range []string{name, filepath.Base(name)} {
		if matched, err := filepath.Match(pattern, candidate); err == nil && matched {
			return true
		}
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// filepath.Match stops at separators, so "*deploy*" would miss
	// "group/it-deploy-1"; fall back to matching the literal parts in order.
	rest := name
	found := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		if strings.Contains(part, "?") {
			return false
		}
		idx := strings.Index(rest, part)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(part):]
		found = true
	}
	return found
}

// FilterByName returns the names matching pattern
func (f *Filter) FilterByName(names []string, pattern string) []string {
	if pattern == "" {
		return names
	}

	var filtered []string
	for _, name := range names {
		if f.Match(name, pattern) {
			filtered = append(filtered, name)
		}
	}
	return filtered
}

// FilterSeq lazily drops the names of seq not matching pattern. Errors pass through.
func (f *Filter) FilterSeq(seq iter.Seq2[string, error], pattern string) iter.Seq2[string, error] {
	if pattern == "" {
		return seq
	}
	return func(yield func(string, error) bool) {
		for name, err := range seq {
			if err == nil && !f.Match(name, pattern) {
				continue
			}
			if !yield(name, err) {
				return
			}
		}
	}
}
