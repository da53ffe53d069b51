package helper

import "strings"

// FirstNameToken returns the first whitespace-delimited token of a full name.
// Personnel matching across the reporting engine keys on this token only; it is
// a known-weak heuristic kept for compatibility with upstream name data, and is
// isolated here so it can be swapped without touching matcher/builder contracts.
func FirstNameToken(fullName string) string {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// FirstNameTokens maps a list of requested names to their first tokens,
// dropping blanks.
func FirstNameTokens(names []string) []string {
	tokens := make([]string, 0, len(names))
	for _, n := range names {
		if t := FirstNameToken(n); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// ContainsAll reports whether names is empty or carries the "all" sentinel
// (case-insensitive), meaning "no personnel restriction".
func ContainsAll(names []string) bool {
	if len(names) == 0 {
		return true
	}
	for _, n := range names {
		if strings.EqualFold(strings.TrimSpace(n), "all") {
			return true
		}
	}
	return false
}
