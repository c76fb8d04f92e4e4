// Package source loads raw documents for the preprocessing pipeline.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrInvalidEncoding is returned when a document is not valid UTF-8 after
// BOM-directed decoding.
var ErrInvalidEncoding = errors.New("document is not valid UTF-8")

// ReadFile loads the document at path. "-" reads from standard input.
func ReadFile(path string) (string, error) {
	if path == "-" || path == "" {
		return Read(os.Stdin)
	}

	f, err := os.Open(path) // #nosec G304 -- reading user-selected documents is the point.
	if err != nil {
		return "", fmt.Errorf("open document: %w", err)
	}
	defer func() { _ = f.Close() }()

	s, err := Read(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Read loads a whole document from r. A leading byte order mark selects
// UTF-8 or UTF-16 decoding and is removed; without one the input must be
// UTF-8. An empty document is returned as "" with no error.
func Read(r io.Reader) (string, error) {
	dec := unicode.BOMOverride(transform.Nop)

	data, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidEncoding
	}
	return string(data), nil
}
