package lexicon

import "github.com/example/go-lexprep/internal/text"

// Classified pairs a token with the category the lexicon assigns it.
// Category is nil for punctuation and for words the lexicon does not know.
type Classified struct {
	Token    text.Token
	Category Category
}

// Known reports whether the token was found in the lexicon.
func (c Classified) Known() bool { return c.Category != nil }

// Classify looks up every word token of tokens in lx, preserving order.
func Classify(lx *Lexicon, tokens []text.Token) []Classified {
	out := make([]Classified, len(tokens))
	for i, tok := range tokens {
		out[i].Token = tok
		if tok.Kind == text.KindPunct {
			continue
		}
		if c, ok := lx.Lookup(tok.Text); ok {
			out[i].Category = c
		}
	}
	return out
}

// Coverage returns the share of word tokens that the lexicon recognised.
// It is 0 when there are no word tokens.
func Coverage(classified []Classified) float64 {
	var words, known int
	for _, c := range classified {
		if c.Token.Kind == text.KindPunct {
			continue
		}
		words++
		if c.Known() {
			known++
		}
	}
	if words == 0 {
		return 0
	}
	return float64(known) / float64(words)
}
