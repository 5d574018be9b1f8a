// Package util provides common text helpers used across the interpreter.
package util

import "strings"

// CommentMarker introduces a trailing comment in a command line.
const CommentMarker = "//"

// StripComment returns the part of s before the first comment marker.
func StripComment(s string) string {
	if i := strings.Index(s, CommentMarker); i >= 0 {
		return s[:i]
	}
	return s
}

// SplitStatements splits s on semicolons, trims every piece and drops
// the ones that are empty after trimming.
func SplitStatements(s string) []string {
	parts := strings.Split(s, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// CollapseWhitespace replaces every run of whitespace with a single space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TrimSign strips one leading plus sign.
func TrimSign(s string) string {
	return strings.TrimPrefix(s, "+")
}

// Truncate shortens s to at most n runes, appending "..." when cut.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
