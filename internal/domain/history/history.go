// Where: internal/domain/history/history.go
// What: Pure helpers for recently used names and input suggestions.
// Why: Keep history logic deterministic and independent from I/O.
package history

import "strings"

// Limit is the number of entries kept per history list.
const Limit = 10

// Suggestions merges the preferred value, history and candidates into a unique list.
func Suggestions(preferred string, history, candidates []string) []string {
	suggestions := []string{}
	seen := map[string]struct{}{}
	add := func(value string) {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return
		}
		if _, ok := seen[trimmed]; ok {
			return
		}
		suggestions = append(suggestions, trimmed)
		seen[trimmed] = struct{}{}
	}

	add(preferred)
	for _, entry := range history {
		add(entry)
	}
	for _, candidate := range candidates {
		add(candidate)
	}
	return suggestions
}

// Push inserts value at the front, drops duplicates and enforces limit.
func Push(entries []string, value string, limit int) []string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return entries
	}
	next := make([]string, 0, limit)
	for _, entry := range Suggestions(trimmed, entries, nil) {
		if limit > 0 && len(next) >= limit {
			break
		}
		next = append(next, entry)
	}
	return next
}
