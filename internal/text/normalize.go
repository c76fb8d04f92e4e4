package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeWord strips non-alphabetic runes from both ends of s and
// lowercases what remains. The result is empty when s contains no alphabetic
// rune. Alphabetic covers letters, letter numbers (Ⅻ) and other alphabetic
// marks such as dependent vowel signs.
//
// Lowercasing uses full Unicode case mapping, so a word-final capital sigma
// becomes ς rather than σ.
func NormalizeWord(s string) string {
	s = trimNonAlphabetic(s)
	if s == "" {
		return ""
	}
	// A Caser keeps state between calls and is not safe for concurrent use.
	s = cases.Lower(language.Und).String(s)
	// Lowercasing can expand a letter into a letter plus a combining mark
	// (İ → i̇); trim again so the result is a fixed point.
	return trimNonAlphabetic(s)
}

func isAlphabetic(r rune) bool {
	return unicode.In(r, unicode.Letter, unicode.Nl, unicode.Other_Alphabetic)
}

func trimNonAlphabetic(s string) string {
	return strings.TrimFunc(s, func(r rune) bool { return !isAlphabetic(r) })
}
