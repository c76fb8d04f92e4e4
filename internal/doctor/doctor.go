// Package doctor provides environment preflight checks for lexprep.
package doctor

import (
	"fmt"
	"io"
	"net"
	"strconv"

	"github.com/example/go-lexprep/internal/lexicon"
	"github.com/example/go-lexprep/internal/source"
	"github.com/example/go-lexprep/internal/text"
)

// PassMark and FailMark are the prefix symbols printed for each check result.
const (
	PassMark = "✓"
	FailMark = "✗"
)

// ListenFunc tries to bind addr and reports why it cannot.
type ListenFunc func(addr string) error

// Config holds the inputs and injectable dependencies for each doctor check.
type Config struct {
	// InputPath is the document to decode. Empty or "-" skips the check,
	// since stdin cannot be inspected without consuming it.
	InputPath string
	// LexiconPath is the classification lexicon. Empty skips the check.
	LexiconPath string
	// ListenAddr is the server listen address.
	ListenAddr string
	// Listen, when set, is called to confirm ListenAddr can be bound.
	Listen ListenFunc
}

// Result collects the outcome of all checks.
type Result struct {
	failures []string
}

// Failed returns true if any check failed.
func (r *Result) Failed() bool { return len(r.failures) > 0 }

// Failures returns the list of failure messages.
func (r *Result) Failures() []string { return append([]string(nil), r.failures...) }

// AddFailure appends an external failure message to the result.
func (r *Result) AddFailure(msg string) { r.failures = append(r.failures, msg) }

func (r *Result) fail(msg string) { r.failures = append(r.failures, msg) }

// Run executes all configured checks and writes human-readable output to w.
// Each check line is prefixed with PassMark or FailMark.
func Run(cfg Config, w io.Writer) Result {
	var res Result

	// ---- input document ---------------------------------------------------
	if cfg.InputPath == "" || cfg.InputPath == "-" {
		fmt.Fprintf(w, "%s input document: stdin (skipped)\n", PassMark)
	} else {
		doc, err := source.ReadFile(cfg.InputPath)
		if err != nil {
			res.fail(fmt.Sprintf("input document: %v", err))
			fmt.Fprintf(w, "%s input document: %v\n", FailMark, err)
		} else {
			p := text.NewPreprocessor(doc)
			fmt.Fprintf(w, "%s input document: %s (%d bytes, %d tokens, %d sentences)\n",
				PassMark, cfg.InputPath, len(doc), len(p.Tokens()), len(p.Sentences()))
		}
	}

	// ---- lexicon ----------------------------------------------------------
	if cfg.LexiconPath == "" {
		fmt.Fprintf(w, "%s lexicon: not configured (classify disabled)\n", PassMark)
	} else {
		lx, err := lexicon.LoadFile(cfg.LexiconPath)
		if err != nil {
			res.fail(fmt.Sprintf("lexicon: %v", err))
			fmt.Fprintf(w, "%s lexicon: %v\n", FailMark, err)
		} else {
			fmt.Fprintf(w, "%s lexicon: %s (%d entries)\n", PassMark, cfg.LexiconPath, lx.Len())
		}
	}

	// ---- listen address ---------------------------------------------------
	if err := checkListenAddr(cfg.ListenAddr); err != nil {
		res.fail(fmt.Sprintf("listen address: %v", err))
		fmt.Fprintf(w, "%s listen address %q: %v\n", FailMark, cfg.ListenAddr, err)
	} else if cfg.Listen != nil {
		if err := cfg.Listen(cfg.ListenAddr); err != nil {
			res.fail(fmt.Sprintf("listen address: %v", err))
			fmt.Fprintf(w, "%s listen address %s: %v\n", FailMark, cfg.ListenAddr, err)
		} else {
			fmt.Fprintf(w, "%s listen address: %s (available)\n", PassMark, cfg.ListenAddr)
		}
	} else {
		fmt.Fprintf(w, "%s listen address: %s\n", PassMark, cfg.ListenAddr)
	}

	return res
}

// checkListenAddr returns an error unless addr is host:port with a port in
// [0, 65535]. The host may be empty.
func checkListenAddr(addr string) error {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("bad port %q: %w", port, err)
	}
	if n < 0 || n > 65535 {
		return fmt.Errorf("port %d out of range", n)
	}
	return nil
}

// TryListen binds addr and immediately releases it.
func TryListen(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return ln.Close()
}
