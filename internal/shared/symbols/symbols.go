// Package symbols validates ticker symbols before they reach upstream URL
// construction. The grammar is deliberately conservative: a malformed symbol
// is a path/URL-injection attempt until proven otherwise.
package symbols

import (
	"regexp"
	"strings"
)

// validSymbol accepts letters/digits with an optional leading ^ for indices
// and ./- continuation, capped at 10 characters after the caret.
var validSymbol = regexp.MustCompile(`(?i)^\^?[A-Z0-9][A-Z0-9.\-]{0,9}$`)

// Valid reports whether s matches the ticker grammar.
func Valid(s string) bool {
	return validSymbol.MatchString(s)
}

// Normalize trims surrounding whitespace and uppercases the symbol.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Sanitize normalizes every candidate and silently drops the ones that fail
// the grammar. Order is preserved; the result may be empty.
func Sanitize(candidates []string) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		s := Normalize(c)
		if s == "" || !Valid(s) {
			continue
		}
		out = append(out, s)
	}
	return out
}
