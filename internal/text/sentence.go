package text

import (
	"strings"
	"unicode/utf8"
)

// SplitSentences groups the whitespace-delimited words of text into
// sentences. A sentence ends after any word whose last rune is one of
// . ! ? or ; and the words inside it are joined by single spaces. Words
// left over after the final terminator form a last sentence of their own.
//
// Abbreviations and decimals are not special-cased: "Mr. Smith" is two
// sentences.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for _, w := range splitWords(text) {
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(w)

		last, _ := utf8.DecodeLastRuneInString(w)
		if IsSentenceTerminal(last) {
			sentences = append(sentences, current.String())
			current.Reset()
		}
	}

	if current.Len() > 0 {
		sentences = append(sentences, current.String())
	}

	return sentences
}
