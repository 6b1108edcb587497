package console

import "strings"

// patternDenylist holds characters stripped from typed input before
// matching, so "git-hub" and "github" suggest the same commands.
const patternDenylist = "()*&^%$#@!~`-_+=[]{}|\\/?<>.,"

// Sanitize lower-cases raw input and removes denylisted characters
func Sanitize(raw string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(patternDenylist, r) {
			return -1
		}
		return r
	}, strings.ToLower(raw))
}

// Filter returns the names that contain the sanitized input anywhere.
// Empty or fully-stripped input keeps every name. Order is preserved.
func Filter(names []string, raw string) []string {
	pattern := Sanitize(raw)
	matches := make([]string, 0, len(names))
	for _, name := range names {
		if strings.Contains(name, pattern) {
			matches = append(matches, name)
		}
	}
	return matches
}

// IsResolved reports whether raw names exactly one candidate verbatim
func IsResolved(candidates []string, raw string) bool {
	return len(candidates) == 1 && candidates[0] == raw
}
