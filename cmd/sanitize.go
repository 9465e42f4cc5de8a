package cmd

import (
	"strings"
	"unicode"
)

// sanitizeText replaces control characters, including C1 controls and DEL,
// with '?' so note paths and titles echoed in diagnostics cannot carry
// terminal escape sequences.
func sanitizeText(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return '?'
		}
		return r
	}, s)
}
