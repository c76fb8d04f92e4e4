// Package text implements the preprocessing pipeline: tokenization, word
// normalization, unique-word collection and sentence segmentation.
package text

import "golang.org/x/sync/errgroup"

// Result holds the three derived views of a document.
type Result struct {
	Tokens      []Token
	UniqueWords []string
	Sentences   []string
}

// Preprocessor owns a source document and every view derived from it.
// All views are computed by NewPreprocessor and never change afterwards.
type Preprocessor struct {
	source    string
	tokens    []Token
	unique    []string
	sentences []string
}

// NewPreprocessor runs the token and sentence passes over src and returns
// once both have finished. The passes share nothing but the immutable
// source string, so they run concurrently.
func NewPreprocessor(src string) *Preprocessor {
	p := &Preprocessor{source: src}

	var g errgroup.Group
	g.Go(func() error {
		p.tokens = Tokenize(src)
		p.unique = CollectUnique(p.tokens)
		return nil
	})
	g.Go(func() error {
		p.sentences = SplitSentences(src)
		return nil
	})
	_ = g.Wait() // neither pass can fail

	return p
}

// Build is shorthand for NewPreprocessor(src).Result().
func Build(src string) Result {
	return NewPreprocessor(src).Result()
}

func (p *Preprocessor) Source() string { return p.source }

// Tokens returns the token stream in document order.
func (p *Preprocessor) Tokens() []Token { return append([]Token{}, p.tokens...) }

// UniqueWords returns the distinct normalized words in first-seen order.
func (p *Preprocessor) UniqueWords() []string { return append([]string{}, p.unique...) }

// Sentences returns the sentence spans in document order.
func (p *Preprocessor) Sentences() []string { return append([]string{}, p.sentences...) }

// Result returns copies of all three views.
func (p *Preprocessor) Result() Result {
	return Result{
		Tokens:      p.Tokens(),
		UniqueWords: p.UniqueWords(),
		Sentences:   p.Sentences(),
	}
}
