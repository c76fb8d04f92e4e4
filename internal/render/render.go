// Package render writes preprocessing results in the formats the CLI offers.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/example/go-lexprep/internal/lexicon"
	"github.com/example/go-lexprep/internal/text"
	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const (
	ViewAll       = "all"
	ViewTokens    = "tokens"
	ViewWords     = "words"
	ViewSentences = "sentences"
)

// Document is the serialisable form of a preprocessing result. A nil field
// is not part of the view and is left out of the output. A selected view is
// written even when it is empty.
type Document struct {
	Tokens      []string `json:"tokens" yaml:"tokens"`
	UniqueWords []string `json:"unique_words" yaml:"unique_words"`
	Sentences   []string `json:"sentences" yaml:"sentences"`
	Chunks      []string `json:"chunks" yaml:"chunks"`
}

// encodedDocument distinguishes an absent view (nil pointer) from an empty
// one for the encoders.
type encodedDocument struct {
	Tokens      *[]string `json:"tokens,omitempty" yaml:"tokens,omitempty"`
	UniqueWords *[]string `json:"unique_words,omitempty" yaml:"unique_words,omitempty"`
	Sentences   *[]string `json:"sentences,omitempty" yaml:"sentences,omitempty"`
	Chunks      *[]string `json:"chunks,omitempty" yaml:"chunks,omitempty"`
}

func present(items []string) *[]string {
	if items == nil {
		return nil
	}
	return &items
}

func (d Document) encoded() encodedDocument {
	return encodedDocument{
		Tokens:      present(d.Tokens),
		UniqueWords: present(d.UniqueWords),
		Sentences:   present(d.Sentences),
		Chunks:      present(d.Chunks),
	}
}

func (d Document) MarshalJSON() ([]byte, error) { return json.Marshal(d.encoded()) }
func (d Document) MarshalYAML() (any, error)    { return d.encoded(), nil }

// Options selects what Write emits.
type Options struct {
	Format string
	View   string
	// Chunks, when non-nil, is emitted after the selected view.
	Chunks []string
}

// NewDocument projects res onto the requested view.
func NewDocument(res text.Result, view string) (Document, error) {
	var d Document
	switch view {
	case ViewAll, "":
		d.Tokens = text.Surfaces(res.Tokens)
		d.UniqueWords = selected(res.UniqueWords)
		d.Sentences = selected(res.Sentences)
	case ViewTokens:
		d.Tokens = text.Surfaces(res.Tokens)
	case ViewWords:
		d.UniqueWords = selected(res.UniqueWords)
	case ViewSentences:
		d.Sentences = selected(res.Sentences)
	default:
		return Document{}, fmt.Errorf("invalid view %q (expected %s|%s|%s|%s)",
			view, ViewAll, ViewTokens, ViewWords, ViewSentences)
	}
	return d, nil
}

// selected marks a view as part of the document even when it has no items.
func selected(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

// Write renders res to w.
func Write(w io.Writer, res text.Result, opts Options) error {
	doc, err := NewDocument(res, opts.View)
	if err != nil {
		return err
	}
	doc.Chunks = opts.Chunks

	switch opts.Format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatText, "":
		return writeText(w, doc)
	default:
		return fmt.Errorf("invalid format %q (expected %s|%s|%s)", opts.Format, FormatText, FormatJSON, FormatYAML)
	}
}

// writeText prints one item per line under a section header. Sections
// absent from the view are skipped.
func writeText(w io.Writer, doc Document) error {
	sb := &strings.Builder{}

	section := func(title string, items []string) {
		if items == nil {
			return
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(sb, "# %s (%d)\n", title, len(items))
		for _, it := range items {
			sb.WriteString(it)
			sb.WriteByte('\n')
		}
	}
	section("tokens", doc.Tokens)
	section("unique words", doc.UniqueWords)
	section("sentences", doc.Sentences)
	section("chunks", doc.Chunks)

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteClassified prints one tab-separated line per token:
// surface, part of speech (or "-") and base form (or "-").
func WriteClassified(w io.Writer, classified []lexicon.Classified) error {
	sb := &strings.Builder{}
	for _, c := range classified {
		pos, base := "-", "-"
		if c.Known() {
			pos = c.Category.PartOfSpeech().String()
			base = c.Category.Base()
		}
		fmt.Fprintf(sb, "%s\t%s\t%s\n", c.Token.Text, pos, base)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
