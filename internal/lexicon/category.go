// Package lexicon holds the grammatical data model that classifies tokens
// produced by the text pipeline into lexical categories.
//
// Morphology here is deliberately naive: plurals append "s" unless a lexicon
// entry names one, and verb forms append fixed affixes.
package lexicon

import "fmt"

// Category is one of the part-of-speech variants below. The set is closed:
// only types in this package implement it.
type Category interface {
	PartOfSpeech() PartOfSpeech
	Base() string
	category()
}

// Noun is a countable noun. IrregularPlural, when set, replaces the naive
// plural.
type Noun struct {
	Singular        string
	IrregularPlural string
}

func (n Noun) PartOfSpeech() PartOfSpeech { return PosNoun }
func (n Noun) Base() string               { return n.Singular }
func (Noun) category()                    {}

// Plural returns IrregularPlural when set and otherwise appends "s" to the
// singular form.
func (n Noun) Plural() string {
	if n.IrregularPlural != "" {
		return n.IrregularPlural
	}
	return n.Singular + "s"
}

// Pronoun carries its four case forms together with gender and number.
type Pronoun struct {
	Subject    string
	Object     string
	Possessive string
	Reflexive  string
	Gender     Gender
	Number     Number
}

func (p Pronoun) PartOfSpeech() PartOfSpeech { return PosPronoun }
func (p Pronoun) Base() string               { return p.Subject }
func (Pronoun) category()                    {}

// Verb is a regular verb identified by its base form.
type Verb struct {
	BaseForm string
}

func (v Verb) PartOfSpeech() PartOfSpeech { return PosVerb }
func (v Verb) Base() string               { return v.BaseForm }
func (Verb) category()                    {}

// Conjugate returns the form of v for tense. Tenses outside the known set
// yield the base form.
func (v Verb) Conjugate(t Tense) string {
	b := v.BaseForm
	switch t {
	case TensePast, TensePastParticiple:
		return b + "ed"
	case TensePresent, TenseThirdPersonSingular, TensePresentSingular:
		return b + "s"
	case TensePresentParticiple:
		return b + "ing"
	case TenseInfinitive:
		return "to " + b
	case TenseBase, TensePresentPlural:
		return b
	default:
		return b
	}
}

// Adjective is a describing word with agreement, degree and position.
type Adjective struct {
	BaseForm string
	Gender   Gender
	Number   Number
	Degree   Degree
	Position Position
}

func (a Adjective) PartOfSpeech() PartOfSpeech { return PosAdjective }
func (a Adjective) Base() string               { return a.BaseForm }
func (Adjective) category()                    {}

// WithDegree returns a copy of a with its degree replaced.
func (a Adjective) WithDegree(d Degree) Adjective {
	a.Degree = d
	return a
}

// Adverb records what it modifies and where it sits.
type Adverb struct {
	BaseForm string
	Modifies Modifies
	Position Position
}

func (a Adverb) PartOfSpeech() PartOfSpeech { return PosAdverb }
func (a Adverb) Base() string               { return a.BaseForm }
func (Adverb) category()                    {}

// Preposition governs the case of its object.
type Preposition struct {
	BaseForm string
	Case     PrepositionCase
}

func (p Preposition) PartOfSpeech() PartOfSpeech { return PosPreposition }
func (p Preposition) Base() string               { return p.BaseForm }
func (Preposition) category()                    {}

// Conjunction joins words or clauses.
type Conjunction struct {
	BaseForm string
}

func (c Conjunction) PartOfSpeech() PartOfSpeech { return PosConjunction }
func (c Conjunction) Base() string               { return c.BaseForm }
func (Conjunction) category()                    {}

// Interjection is a standalone exclamation.
type Interjection struct {
	BaseForm string
}

func (i Interjection) PartOfSpeech() PartOfSpeech { return PosInterjection }
func (i Interjection) Base() string               { return i.BaseForm }
func (Interjection) category()                    {}

// Article is a definite or indefinite determiner.
type Article struct {
	BaseForm string
	Definite bool
}

func (a Article) PartOfSpeech() PartOfSpeech { return PosArticle }
func (a Article) Base() string               { return a.BaseForm }
func (Article) category()                    {}

// Describe renders the attributes of c in a short human-readable form.
func Describe(c Category) string {
	switch v := c.(type) {
	case Noun:
		return fmt.Sprintf("noun %s (plural %s)", v.Singular, v.Plural())
	case Pronoun:
		return fmt.Sprintf("pronoun %s/%s/%s/%s %s %s",
			v.Subject, v.Object, v.Possessive, v.Reflexive, v.Gender, v.Number)
	case Verb:
		return fmt.Sprintf("verb %s (past %s, participle %s)",
			v.BaseForm, v.Conjugate(TensePast), v.Conjugate(TensePresentParticiple))
	case Adjective:
		return fmt.Sprintf("adjective %s %s %s", v.BaseForm, v.Degree, v.Position)
	case Adverb:
		return fmt.Sprintf("adverb %s modifies %s", v.BaseForm, v.Modifies)
	case Preposition:
		return fmt.Sprintf("preposition %s %s", v.BaseForm, v.Case)
	case Conjunction:
		return "conjunction " + v.BaseForm
	case Interjection:
		return "interjection " + v.BaseForm
	case Article:
		if v.Definite {
			return "article " + v.BaseForm + " definite"
		}
		return "article " + v.BaseForm + " indefinite"
	case nil:
		return "unknown"
	default:
		panic(fmt.Sprintf("lexicon: unhandled category %T", c))
	}
}
