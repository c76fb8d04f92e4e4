package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenKind classifies a token as a word-form or a single punctuation mark.
type TokenKind int

const (
	KindWord TokenKind = iota
	KindPunct
)

func (k TokenKind) String() string {
	if k == KindPunct {
		return "punct"
	}
	return "word"
}

// Token is one unit of the token stream. Text keeps the original case.
type Token struct {
	Text string
	Kind TokenKind
}

// IsPunctuation reports whether r belongs to the separable punctuation alphabet.
func IsPunctuation(r rune) bool {
	switch r {
	case ',', '.', '!', '?', ';', ':', '\'', '"', '(', ')', '@', '#', '$', '%', '_', '~', '[', ']':
		return true
	}
	return false
}

// IsSentenceTerminal reports whether r ends a sentence.
func IsSentenceTerminal(r rune) bool {
	switch r {
	case '.', '!', '?', ';':
		return true
	}
	return false
}

// Tokenize splits s on whitespace and separates attached punctuation from
// each fragment. A leading mark is split off first and the remainder is
// emitted as-is, so "(hello)" yields "(" and "hello)". Only when the first
// rune is not punctuation is a trailing mark split off: "word." yields
// "word" and ".".
func Tokenize(s string) []Token {
	fields := splitWords(s)
	tokens := make([]Token, 0, len(fields)+len(fields)/4)

	for _, w := range fields {
		first, firstSize := utf8.DecodeRuneInString(w)
		if IsPunctuation(first) {
			tokens = append(tokens, newToken(w[:firstSize]))
			if rest := w[firstSize:]; rest != "" {
				tokens = append(tokens, newToken(rest))
			}
			continue
		}

		last, lastSize := utf8.DecodeLastRuneInString(w)
		if IsPunctuation(last) {
			tokens = append(tokens, newToken(w[:len(w)-lastSize]), newToken(w[len(w)-lastSize:]))
			continue
		}

		tokens = append(tokens, newToken(w))
	}

	return tokens
}

// Surfaces returns the surface forms of tokens in order.
func Surfaces(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}

func newToken(s string) Token {
	kind := KindWord
	if r, size := utf8.DecodeRuneInString(s); size == len(s) && IsPunctuation(r) {
		kind = KindPunct
	}
	return Token{Text: strings.Clone(s), Kind: kind}
}

// splitWords splits text into non-empty fragments on whitespace boundaries.
func splitWords(s string) []string {
	return strings.FieldsFunc(s, unicode.IsSpace)
}
