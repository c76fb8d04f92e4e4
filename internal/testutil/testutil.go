// Package testutil provides shared fixtures and skip helpers for tests.
//
// Skip helpers call t.Skip with a clear reason when the named prerequisite
// is absent, so corpus-dependent tests stay runnable in partial
// environments without failing noisily.
//
// Typical usage:
//
//	func TestLargeCorpus(t *testing.T) {
//	    path := testutil.RequireCorpus(t)
//	    ...
//	}
package testutil

import (
	"net"
	"os"
	"path/filepath"
	"testing"
)

// CorpusEnv names the environment variable pointing at a large plain-text
// corpus for integration tests and benchmarks.
const CorpusEnv = "LEXPREP_TEST_CORPUS"

// Document is a short multi-sentence document shared by tests.
const Document = "The quick cat runs, oh! She walks quickly. And the cat sleeps"

// LexiconYAML is a small lexicon covering most words of Document.
const LexiconYAML = `
- word: the
  pos: article
  definite: true
- word: quick
  pos: adjective
- word: cat
  pos: noun
- word: runs
  pos: verb
- word: oh
  pos: interjection
- word: she
  pos: pronoun
  gender: feminine
  forms:
    subject: she
    object: her
    possessive: her
    reflexive: herself
- word: quickly
  pos: adverb
- word: and
  pos: conjunction
`

// RequireCorpus skips the test unless CorpusEnv names a readable file, and
// returns its path otherwise.
func RequireCorpus(tb testing.TB) string {
	tb.Helper()

	p := os.Getenv(CorpusEnv)
	if p == "" {
		tb.Skipf("corpus not configured; set %s to a text file", CorpusEnv)
		return ""
	}

	// #nosec G703 -- Tests intentionally accept an env-provided local path.
	if _, err := os.Stat(p); err != nil {
		tb.Skipf("corpus not found at %s=%q", CorpusEnv, p)
		return ""
	}

	return p
}

// WriteFile writes contents to name inside a fresh temp dir and returns the
// full path.
func WriteFile(tb testing.TB, name, contents string) string {
	tb.Helper()

	p := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(p, []byte(contents), 0o600); err != nil {
		tb.Fatalf("write %s: %v", name, err)
	}

	return p
}

// WriteDocument writes Document to a temp file and returns its path.
func WriteDocument(tb testing.TB) string {
	tb.Helper()
	return WriteFile(tb, "doc.txt", Document)
}

// WriteLexicon writes LexiconYAML to a temp file and returns its path.
func WriteLexicon(tb testing.TB) string {
	tb.Helper()
	return WriteFile(tb, "lexicon.yaml", LexiconYAML)
}

// FreeAddr returns a loopback address with a port that was free a moment ago.
func FreeAddr(tb testing.TB) string {
	tb.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		tb.Fatalf("listen: %v", err)
	}

	addr := ln.Addr().String()
	_ = ln.Close()

	return addr
}
