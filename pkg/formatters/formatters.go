// Package formatters provides small whitespace and case helpers for strings.
package formatters

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StringFormatter transforms s, upper-casing the result when uppercase is set
type StringFormatter func(s string, uppercase bool) string

var (
	_ StringFormatter = CapitalizeFirstLetter
	_ StringFormatter = TrimAndUppercase
)

// CapitalizeFirstLetter upper-cases the first non-whitespace character of s,
// keeping leading whitespace and the rest of the string as they are. With
// uppercase set the whole string is upper-cased instead. Empty and
// all-whitespace strings are returned unchanged.
func CapitalizeFirstLetter(s string, uppercase bool) string {
	if uppercase {
		return toUpper(s)
	}

	trimmed := strings.TrimLeftFunc(s, isSpace)
	if trimmed == "" {
		return s
	}

	first, size := utf8.DecodeRuneInString(trimmed)
	if first == utf8.RuneError && size == 1 {
		// invalid UTF-8 has no case to change
		return s
	}
	prefix := s[:len(s)-len(trimmed)]
	return prefix + toUpper(string(first)) + trimmed[size:]
}

// TrimAndUppercase trims whitespace from both ends of s and upper-cases the
// result when uppercase is set. Internal whitespace is preserved.
func TrimAndUppercase(s string, uppercase bool) string {
	trimmed := strings.TrimFunc(s, isSpace)
	if uppercase {
		return toUpper(trimmed)
	}
	return trimmed
}

// isSpace reports Unicode white space and the byte order mark, excluding
// NEL (U+0085), which is kept as content.
func isSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// toUpper applies full Unicode upper-casing. Casers are stateful, so one is
// built per call.
func toUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}
