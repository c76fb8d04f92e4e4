package lexicon

import (
	"fmt"
	"strings"
)

// PartOfSpeech identifies the variant of a Category.
type PartOfSpeech int

const (
	PosNoun PartOfSpeech = iota
	PosPronoun
	PosVerb
	PosAdjective
	PosAdverb
	PosPreposition
	PosConjunction
	PosInterjection
	PosArticle
)

var posNames = []string{
	"noun", "pronoun", "verb", "adjective", "adverb",
	"preposition", "conjunction", "interjection", "article",
}

func (p PartOfSpeech) String() string { return enumName(posNames, int(p)) }

func (p PartOfSpeech) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *PartOfSpeech) UnmarshalText(b []byte) error {
	i, err := parseEnum("part of speech", posNames, string(b))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownPartOfSpeech, b)
	}
	*p = PartOfSpeech(i)
	return nil
}

type Gender int

const (
	GenderNeuter Gender = iota
	GenderMasculine
	GenderFeminine
)

var genderNames = []string{"neuter", "masculine", "feminine"}

func (g Gender) String() string               { return enumName(genderNames, int(g)) }
func (g Gender) MarshalText() ([]byte, error) { return []byte(g.String()), nil }
func (g *Gender) UnmarshalText(b []byte) error {
	i, err := parseEnum("gender", genderNames, string(b))
	*g = Gender(i)
	return err
}

type Number int

const (
	NumberSingular Number = iota
	NumberPlural
)

var numberNames = []string{"singular", "plural"}

func (n Number) String() string               { return enumName(numberNames, int(n)) }
func (n Number) MarshalText() ([]byte, error) { return []byte(n.String()), nil }
func (n *Number) UnmarshalText(b []byte) error {
	i, err := parseEnum("number", numberNames, string(b))
	*n = Number(i)
	return err
}

type Degree int

const (
	DegreePositive Degree = iota
	DegreeComparative
	DegreeSuperlative
)

var degreeNames = []string{"positive", "comparative", "superlative"}

func (d Degree) String() string               { return enumName(degreeNames, int(d)) }
func (d Degree) MarshalText() ([]byte, error) { return []byte(d.String()), nil }
func (d *Degree) UnmarshalText(b []byte) error {
	i, err := parseEnum("degree", degreeNames, string(b))
	*d = Degree(i)
	return err
}

// Position is where a modifier sits relative to the word it modifies.
type Position int

const (
	PositionAttributive Position = iota
	PositionPredicative
	PositionPostpositive
)

var positionNames = []string{"attributive", "predicative", "postpositive"}

func (p Position) String() string               { return enumName(positionNames, int(p)) }
func (p Position) MarshalText() ([]byte, error) { return []byte(p.String()), nil }
func (p *Position) UnmarshalText(b []byte) error {
	i, err := parseEnum("position", positionNames, string(b))
	*p = Position(i)
	return err
}

// Modifies names what an adverb attaches to.
type Modifies int

const (
	ModifiesVerb Modifies = iota
	ModifiesAdjective
	ModifiesAdverb
)

var modifiesNames = []string{"verb", "adjective", "adverb"}

func (m Modifies) String() string               { return enumName(modifiesNames, int(m)) }
func (m Modifies) MarshalText() ([]byte, error) { return []byte(m.String()), nil }
func (m *Modifies) UnmarshalText(b []byte) error {
	i, err := parseEnum("modifies", modifiesNames, string(b))
	*m = Modifies(i)
	return err
}

// PrepositionCase is the grammatical case a preposition governs.
type PrepositionCase int

const (
	CaseObjective PrepositionCase = iota
	CaseGenitive
	CaseDative
)

var caseNames = []string{"objective", "genitive", "dative"}

func (c PrepositionCase) String() string               { return enumName(caseNames, int(c)) }
func (c PrepositionCase) MarshalText() ([]byte, error) { return []byte(c.String()), nil }
func (c *PrepositionCase) UnmarshalText(b []byte) error {
	i, err := parseEnum("preposition case", caseNames, string(b))
	*c = PrepositionCase(i)
	return err
}

// Tense selects a verb form for Verb.Conjugate.
type Tense int

const (
	TenseBase Tense = iota
	TensePast
	TensePastParticiple
	TensePresent
	TensePresentParticiple
	TenseThirdPersonSingular
	TensePresentSingular
	TensePresentPlural
	TenseInfinitive
)

var tenseNames = []string{
	"base", "past", "past_participle", "present", "present_participle",
	"third_person_singular", "present_singular", "present_plural", "infinitive",
}

func (t Tense) String() string               { return enumName(tenseNames, int(t)) }
func (t Tense) MarshalText() ([]byte, error) { return []byte(t.String()), nil }
func (t *Tense) UnmarshalText(b []byte) error {
	i, err := parseEnum("tense", tenseNames, string(b))
	*t = Tense(i)
	return err
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("unknown(%d)", i)
	}
	return names[i]
}

// parseEnum matches s case-insensitively against names. Dashes and spaces
// are accepted in place of underscores.
func parseEnum(kind string, names []string, s string) (int, error) {
	key := strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToLower(strings.TrimSpace(s)))
	for i, n := range names {
		if n == key {
			return i, nil
		}
	}
	return 0, fmt.Errorf("invalid %s %q (want %s)", kind, s, strings.Join(names, "|"))
}
