package naming

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/backmassage/pathforge/internal/config"
)

// ErrForbiddenChars is returned by [Assemble] when the assembled name would
// contain a character the platform forbids for its segment type.
var ErrForbiddenChars = errors.New("name contains unacceptable characters")

// Parts holds the independent components of an artifact name. Empty optional
// components are omitted from the assembled result entirely.
type Parts struct {
	Kind    config.ObjectKind
	Prefix  string
	MidPart string
	Suffix  string

	IncludeTimestamp bool
	Timestamp        time.Time // Zero value means "now".
	TimeFormat       string    // Go layout. Required when IncludeTimestamp is set.

	Extension string // Without leading dot. Applied to files only.
	Separator string // Single character joining components.
}

// Assemble joins the components in fixed order: prefix, mid part, timestamp,
// suffix, then extension for files. Components are never reordered; absent
// ones are skipped without leaving doubled or trailing separators.
//
// The assembled name is checked against the forbidden-character set for the
// kind's segment type; a hit returns [ErrForbiddenChars] wrapped with the
// offending character.
func Assemble(p Parts) (string, error) {
	segments := []string{p.Prefix}
	if p.MidPart != "" {
		segments = append(segments, p.MidPart)
	}
	if p.IncludeTimestamp {
		segments = append(segments, renderTimestamp(p))
	}
	if p.Suffix != "" {
		segments = append(segments, p.Suffix)
	}

	name := strings.Join(segments, p.Separator)
	if p.Kind == config.KindFile && p.Extension != "" {
		name += "." + strings.TrimPrefix(p.Extension, ".")
	}

	if r, found := FindForbidden(name, p.Kind); found {
		return "", fmt.Errorf("%w: %q in %q", ErrForbiddenChars, r, name)
	}
	return name, nil
}

// renderTimestamp formats the timestamp component using the configured
// layout, substituting the current time when no instant was supplied.
func renderTimestamp(p Parts) string {
	ts := p.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	return ts.Format(p.TimeFormat)
}
