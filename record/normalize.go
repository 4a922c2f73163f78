package record

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// normalizeName converts a raw name to canonical form: trimmed, the
// whole string lower-cased, then the first rune title-cased. Casing is
// Unicode-aware so non-Latin names normalize correctly ("ВаСЯ" → "Вася").
// Titlecase rather than uppercase keeps expanding-case runes stable
// ("ß" titlecases to "Ss", not "SS"), so normalizing is idempotent.
// An empty result after trimming is reported via a non-empty message.
func normalizeName(raw string) (string, string) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", "must not be empty"
	}
	lower := cases.Lower(language.Und).String(s)
	r, size := utf8.DecodeRuneInString(lower)
	return cases.Title(language.Und).String(string(r)) + lower[size:], ""
}
