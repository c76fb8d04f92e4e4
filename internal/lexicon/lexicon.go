package lexicon

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/example/go-lexprep/internal/text"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownPartOfSpeech is returned for a lexicon entry whose pos is not
	// one of the known categories.
	ErrUnknownPartOfSpeech = errors.New("unknown part of speech")
	// ErrDuplicateEntry is returned when two entries normalize to the same word.
	ErrDuplicateEntry = errors.New("duplicate lexicon entry")
)

// Entry is the on-disk form of one lexicon word. Fields that do not apply
// to the entry's part of speech are ignored, and a missing pos means noun.
type Entry struct {
	Word     string          `yaml:"word"`
	POS      PartOfSpeech    `yaml:"pos"`
	Plural   string          `yaml:"plural,omitempty"`
	Gender   Gender          `yaml:"gender,omitempty"`
	Number   Number          `yaml:"number,omitempty"`
	Degree   Degree          `yaml:"degree,omitempty"`
	Position Position        `yaml:"position,omitempty"`
	Modifies Modifies        `yaml:"modifies,omitempty"`
	Case     PrepositionCase `yaml:"case,omitempty"`
	Definite bool            `yaml:"definite,omitempty"`
	Forms    *PronounForms   `yaml:"forms,omitempty"`
}

// PronounForms lists the case forms of a pronoun entry. Missing forms fall
// back to the entry word.
type PronounForms struct {
	Subject    string `yaml:"subject"`
	Object     string `yaml:"object"`
	Possessive string `yaml:"possessive"`
	Reflexive  string `yaml:"reflexive"`
}

// Lexicon maps normalized word forms to their category.
type Lexicon struct {
	entries map[string]Category
	order   []string
}

// New builds a lexicon from entries.
func New(entries []Entry) (*Lexicon, error) {
	lx := &Lexicon{entries: make(map[string]Category, len(entries))}
	for i, e := range entries {
		key := text.NormalizeWord(e.Word)
		if key == "" {
			return nil, fmt.Errorf("entry %d: word %q has no alphabetic runes", i, e.Word)
		}
		if _, ok := lx.entries[key]; ok {
			return nil, fmt.Errorf("entry %d: %w: %q", i, ErrDuplicateEntry, key)
		}
		c, err := e.Category(key)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%q): %w", i, e.Word, err)
		}
		lx.entries[key] = c
		lx.order = append(lx.order, key)
	}
	return lx, nil
}

// Load parses a YAML list of entries from r.
func Load(r io.Reader) (*Lexicon, error) {
	var entries []Entry
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&entries); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode lexicon: %w", err)
	}
	return New(entries)
}

// LoadFile parses the lexicon file at path.
func LoadFile(path string) (*Lexicon, error) {
	f, err := os.Open(path) // #nosec G304 -- lexicon path is operator configuration.
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer func() { _ = f.Close() }()

	lx, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lx, nil
}

// Category converts the entry into its category value, using word as the
// base form.
func (e Entry) Category(word string) (Category, error) {
	switch e.POS {
	case PosNoun:
		return Noun{Singular: word, IrregularPlural: e.Plural}, nil
	case PosPronoun:
		p := Pronoun{Subject: word, Object: word, Possessive: word, Reflexive: word, Gender: e.Gender, Number: e.Number}
		if f := e.Forms; f != nil {
			p.Subject = orDefault(f.Subject, word)
			p.Object = orDefault(f.Object, word)
			p.Possessive = orDefault(f.Possessive, word)
			p.Reflexive = orDefault(f.Reflexive, word)
		}
		return p, nil
	case PosVerb:
		return Verb{BaseForm: word}, nil
	case PosAdjective:
		return Adjective{BaseForm: word, Gender: e.Gender, Number: e.Number, Degree: e.Degree, Position: e.Position}, nil
	case PosAdverb:
		return Adverb{BaseForm: word, Modifies: e.Modifies, Position: e.Position}, nil
	case PosPreposition:
		return Preposition{BaseForm: word, Case: e.Case}, nil
	case PosConjunction:
		return Conjunction{BaseForm: word}, nil
	case PosInterjection:
		return Interjection{BaseForm: word}, nil
	case PosArticle:
		return Article{BaseForm: word, Definite: e.Definite}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownPartOfSpeech, int(e.POS))
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// Lookup returns the category of word after normalizing it.
func (lx *Lexicon) Lookup(word string) (Category, bool) {
	if lx == nil {
		return nil, false
	}
	c, ok := lx.entries[text.NormalizeWord(word)]
	return c, ok
}

// Len returns the number of entries.
func (lx *Lexicon) Len() int {
	if lx == nil {
		return 0
	}
	return len(lx.order)
}

// Words returns the entry keys in file order.
func (lx *Lexicon) Words() []string {
	if lx == nil {
		return nil
	}
	return append([]string{}, lx.order...)
}
