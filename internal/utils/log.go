package utils

import "strings"

const ellipsis = "..."

// TruncateForLog trims s and cuts it to at most limit runes, marking a cut with an ellipsis.
// A non-positive limit hides the value entirely.
func TruncateForLog(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + ellipsis
}
