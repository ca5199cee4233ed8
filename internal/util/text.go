// SPDX-License-Identifier: Apache-2.0

package util

import "fmt"

// Pluralize formats a count with its noun, appending "s" when the count
// is not one. Good enough for the nouns this tool prints.
func Pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// Truncate shortens s to at most max runes, marking the cut with an
// ellipsis. Used for fitting paths into fixed-width TUI rows.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
