package lexicon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/go-lexprep/internal/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sampleLexicon = `
- word: cat
  pos: noun
- word: Run
  pos: verb
- word: she
  pos: pronoun
  gender: feminine
  forms:
    subject: she
    object: her
    possessive: hers
    reflexive: herself
- word: quick
  pos: adjective
  degree: positive
  position: attributive
- word: quickly
  pos: adverb
  modifies: verb
- word: of
  pos: preposition
  case: genitive
- word: and
  pos: conjunction
- word: oh
  pos: interjection
- word: the
  pos: article
  definite: true
`

func loadSample(t *testing.T) *Lexicon {
	t.Helper()
	lx, err := Load(strings.NewReader(sampleLexicon))
	require.NoError(t, err)
	return lx
}

func TestLoad(t *testing.T) {
	lx := loadSample(t)

	assert.Equal(t, 9, lx.Len())
	assert.Equal(t, []string{"cat", "run", "she", "quick", "quickly", "of", "and", "oh", "the"}, lx.Words())

	c, ok := lx.Lookup("She")
	require.True(t, ok)
	assert.Equal(t, Pronoun{
		Subject: "she", Object: "her", Possessive: "hers", Reflexive: "herself",
		Gender: GenderFeminine, Number: NumberSingular,
	}, c)

	c, ok = lx.Lookup("of")
	require.True(t, ok)
	assert.Equal(t, Preposition{BaseForm: "of", Case: CaseGenitive}, c)

	c, ok = lx.Lookup("The")
	require.True(t, ok)
	assert.Equal(t, Article{BaseForm: "the", Definite: true}, c)
}

func TestLoad_IrregularPlural(t *testing.T) {
	lx, err := Load(strings.NewReader("- word: mouse\n  pos: noun\n  plural: mice\n- word: dog\n"))
	require.NoError(t, err)

	c, ok := lx.Lookup("mouse")
	require.True(t, ok)
	assert.Equal(t, Noun{Singular: "mouse", IrregularPlural: "mice"}, c)
	assert.Equal(t, "mice", c.(Noun).Plural())

	c, ok = lx.Lookup("dog")
	require.True(t, ok)
	assert.Equal(t, "dogs", c.(Noun).Plural())
}

func TestLookup_NormalizesInput(t *testing.T) {
	lx := loadSample(t)

	for _, w := range []string{"cat", "CAT", "(cat", "cat)", "\"Cat.\""} {
		c, ok := lx.Lookup(w)
		if assert.True(t, ok, "Lookup(%q)", w) {
			assert.Equal(t, PosNoun, c.PartOfSpeech())
		}
	}

	_, ok := lx.Lookup("dog")
	assert.False(t, ok)
}

func TestLookup_NilLexicon(t *testing.T) {
	var lx *Lexicon
	_, ok := lx.Lookup("cat")
	assert.False(t, ok)
	assert.Zero(t, lx.Len())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "unknown pos", input: "- word: cat\n  pos: gerund\n", wantErr: ErrUnknownPartOfSpeech},
		{name: "duplicate after normalization", input: "- word: Cat\n  pos: noun\n- word: cat.\n  pos: verb\n", wantErr: ErrDuplicateEntry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_RejectsBadInput(t *testing.T) {
	inputs := map[string]string{
		"word without letters": "- word: \"42\"\n  pos: noun\n",
		"unknown field":        "- word: cat\n  pos: noun\n  colour: black\n",
		"bad gender":           "- word: he\n  pos: pronoun\n  gender: plenty\n",
		"not a list":           "word: cat\n",
	}
	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestLoad_EmptyDocument(t *testing.T) {
	lx, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, lx.Len())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleLexicon), 0o600))

	lx, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 9, lx.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEntry_MarshalRoundTripKeepsNames(t *testing.T) {
	out, err := yaml.Marshal(Entry{Word: "quick", POS: PosAdjective, Degree: DegreeSuperlative})
	require.NoError(t, err)
	assert.Contains(t, string(out), "pos: adjective")
	assert.Contains(t, string(out), "degree: superlative")
}

func TestClassify(t *testing.T) {
	lx := loadSample(t)
	got := Classify(lx, text.Tokenize("The quick cat runs, oh!"))

	require.Len(t, got, 7)

	want := []struct {
		token string
		pos   string
	}{
		{"The", "article"},
		{"quick", "adjective"},
		{"cat", "noun"},
		{"runs", ""},
		{",", ""},
		{"oh", "interjection"},
		{"!", ""},
	}
	for i, w := range want {
		assert.Equal(t, w.token, got[i].Token.Text)
		if w.pos == "" {
			assert.False(t, got[i].Known(), "token %q", w.token)
			continue
		}
		require.True(t, got[i].Known(), "token %q", w.token)
		assert.Equal(t, w.pos, got[i].Category.PartOfSpeech().String())
	}

	assert.InDelta(t, 0.8, Coverage(got), 1e-9)
}

func TestClassify_NilLexiconLeavesEverythingUnknown(t *testing.T) {
	got := Classify(nil, text.Tokenize("hello world"))
	require.Len(t, got, 2)
	assert.Zero(t, Coverage(got))
}

func TestCoverage_NoWords(t *testing.T) {
	assert.Zero(t, Coverage(Classify(nil, text.Tokenize("! ? ."))))
	assert.Zero(t, Coverage(nil))
}
