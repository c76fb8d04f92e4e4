package text

import "strings"

// ChunkSentences groups consecutive sentences together while staying within
// maxChars bytes per chunk, joining them with single spaces.
// If maxChars is 0 or negative, all sentences form one chunk.
// Sentences that individually exceed maxChars are kept intact as a single chunk.
func ChunkSentences(sentences []string, maxChars int) []string {
	if len(sentences) == 0 {
		return nil
	}
	if maxChars <= 0 {
		return []string{strings.Join(sentences, " ")}
	}

	var chunks []string
	var current strings.Builder

	for _, s := range sentences {
		if current.Len() == 0 {
			current.WriteString(s)
			continue
		}
		// Would appending this sentence (with a space separator) exceed the limit?
		if current.Len()+1+len(s) > maxChars {
			chunks = append(chunks, current.String())
			current.Reset()
			current.WriteString(s)
		} else {
			current.WriteByte(' ')
			current.WriteString(s)
		}
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}
