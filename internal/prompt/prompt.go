// Package prompt implements the interactive overwrite-decision provider:
// it asks on the terminal whether an existing target may be replaced and
// maps the operator's answer to a collide.Decision.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/backmassage/pathforge/internal/collide"
	"github.com/backmassage/pathforge/internal/config"
)

// Prompter reads overwrite decisions from in and writes questions to out.
// The zero value is not usable; construct with [New] or [NewWith].
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter wired to stdin/stderr. Questions go to stderr so
// they never mix with the computed path on stdout.
func New() *Prompter {
	return NewWith(os.Stdin, os.Stderr)
}

// NewWith returns a Prompter on explicit streams, for tests.
func NewWith(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Decide implements collide.DecisionProvider. It re-asks on unrecognized
// input; a closed input stream counts as an abort.
func (p *Prompter) Decide(path string, kind config.ObjectKind) (collide.Decision, string) {
	noun := "File"
	if kind == config.KindFolder {
		noun = "Folder"
	}

	for {
		fmt.Fprintf(p.out, "%s %q already exists. Overwrite? [y]es / [n]o / [a]bort: ", noun, path)

		line, err := p.in.ReadString('\n')
		if err != nil && line == "" {
			return collide.Abort, "input closed before a decision was made"
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return collide.Overwrite, ""
		case "n", "no":
			return collide.DoNotOverwrite, ""
		case "a", "abort", "q", "quit":
			return collide.Abort, "aborted by operator"
		}

		if err != nil {
			// Partial last line without newline; treat like EOF after consuming it.
			return collide.Abort, "input closed before a decision was made"
		}
		fmt.Fprintln(p.out, "Please answer y, n, or a.")
	}
}
