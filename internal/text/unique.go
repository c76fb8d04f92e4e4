package text

// WordSet is an insertion-ordered set of strings.
type WordSet struct {
	index map[string]struct{}
	words []string
}

// NewWordSet returns an empty set.
func NewWordSet() *WordSet {
	return &WordSet{index: make(map[string]struct{})}
}

// Add appends w unless it is empty or already present. It reports whether w
// was added.
func (s *WordSet) Add(w string) bool {
	if w == "" {
		return false
	}
	if _, ok := s.index[w]; ok {
		return false
	}
	s.index[w] = struct{}{}
	s.words = append(s.words, w)
	return true
}

func (s *WordSet) Contains(w string) bool {
	_, ok := s.index[w]
	return ok
}

func (s *WordSet) Len() int { return len(s.words) }

// Words returns a copy of the members in first-seen order.
func (s *WordSet) Words() []string {
	return append([]string{}, s.words...)
}

// CollectUnique normalizes every token and returns the distinct non-empty
// forms in the order they first appear.
func CollectUnique(tokens []Token) []string {
	set := NewWordSet()
	for _, t := range tokens {
		set.Add(NormalizeWord(t.Text))
	}
	return set.Words()
}
