// Package collide decides what happens when a computed output path already
// exists. The decision itself comes from an injected [DecisionProvider] so
// the policy can be interactive (a prompt) or fixed (always, never, abort);
// tests supply deterministic providers.
package collide

import (
	"errors"
	"fmt"

	"github.com/backmassage/pathforge/internal/config"
)

// Decision is the three-way answer of an overwrite-decision provider.
type Decision int

const (
	Overwrite      Decision = iota // Existing target may be replaced.
	DoNotOverwrite                 // Existing target must be kept.
	Abort                          // Stop the whole operation.
)

// String returns the lowercase label for a decision.
func (d Decision) String() string {
	switch d {
	case Overwrite:
		return "overwrite"
	case DoNotOverwrite:
		return "do-not-overwrite"
	case Abort:
		return "abort"
	}
	return fmt.Sprintf("decision(%d)", int(d))
}

// DecisionProvider answers whether an existing target at path may be
// overwritten. The message accompanies an Abort decision and is surfaced to
// the caller; it is ignored for the other answers.
type DecisionProvider interface {
	Decide(path string, kind config.ObjectKind) (Decision, string)
}

// ErrAborted is returned by [Resolve] when the provider answers Abort.
var ErrAborted = errors.New("aborted on existing target")

// Resolve maps an existing target to a decision. When force is set the
// answer is Overwrite immediately and the provider is never consulted.
// An Abort answer becomes ErrAborted wrapped with the provider's message,
// and aborts unconditionally regardless of any error-handling mode.
func Resolve(path string, kind config.ObjectKind, force bool, provider DecisionProvider) (Decision, error) {
	if force {
		return Overwrite, nil
	}

	decision, msg := provider.Decide(path, kind)
	if decision == Abort {
		if msg == "" {
			msg = path
		}
		return Abort, fmt.Errorf("%w: %s", ErrAborted, msg)
	}
	return decision, nil
}

// Fixed policies for programmatic use.

// Always allows every overwrite.
type Always struct{}

// Decide implements [DecisionProvider].
func (Always) Decide(string, config.ObjectKind) (Decision, string) { return Overwrite, "" }

// Never declines every overwrite.
type Never struct{}

// Decide implements [DecisionProvider].
func (Never) Decide(string, config.ObjectKind) (Decision, string) { return DoNotOverwrite, "" }

// AbortPolicy aborts on the first collision. Message, when set, is carried
// into the abort error.
type AbortPolicy struct {
	Message string
}

// Decide implements [DecisionProvider].
func (p AbortPolicy) Decide(path string, _ config.ObjectKind) (Decision, string) {
	if p.Message != "" {
		return Abort, p.Message
	}
	return Abort, "existing target: " + path
}
