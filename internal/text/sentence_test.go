package text

import (
	"strings"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "three terminators",
			input: "Hello world. How are you? Fine!",
			want:  []string{"Hello world.", "How are you?", "Fine!"},
		},
		{
			name:  "trailing fragment without terminator",
			input: "Stop now",
			want:  []string{"Stop now"},
		},
		{
			name:  "terminated sentence then fragment",
			input: "Done. and then",
			want:  []string{"Done.", "and then"},
		},
		{
			name:  "semicolon ends a sentence",
			input: "first part; second part.",
			want:  []string{"first part;", "second part."},
		},
		{
			name:  "abbreviation is a boundary",
			input: "Mr. Smith left.",
			want:  []string{"Mr.", "Smith left."},
		},
		{
			name:  "decimal inside a word is not a boundary",
			input: "Pi is 3.14 roughly.",
			want:  []string{"Pi is 3.14 roughly."},
		},
		{
			name:  "terminator must be the last rune of the word",
			input: "He said \"stop.\" Then left.",
			want:  []string{"He said \"stop.\" Then left."},
		},
		{
			name:  "whitespace inside a sentence collapses",
			input: "  One\n\ttwo   three.\n\nFour  ",
			want:  []string{"One two three.", "Four"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: " \n\t ",
			want:  nil,
		},
		{
			name:  "lone terminator",
			input: "?",
			want:  []string{"?"},
		},
		{
			name:  "ellipsis word ends once",
			input: "Well... maybe",
			want:  []string{"Well...", "maybe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitSentences(%q) = %q, want %q", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("sentence[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplitSentences_CoversAllContent(t *testing.T) {
	input := "  A b. C d? e;f g! h  i "

	joined := strings.Join(SplitSentences(input), " ")
	if strings.Join(strings.Fields(joined), "") != strings.Join(strings.Fields(input), "") {
		t.Errorf("sentences %q do not cover input %q", joined, input)
	}
}
