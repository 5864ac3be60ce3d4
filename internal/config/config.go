// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. Defaults match the legacy report-path helper scripts for parity.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// --- Enum types for validated string fields ---

// ObjectKind selects whether the computed path names a file or a folder.
type ObjectKind string

const (
	KindFile   ObjectKind = "file"   // Path names a regular file (default).
	KindFolder ObjectKind = "folder" // Path names a directory.
)

// CollisionMode selects the overwrite-decision policy used when the
// computed path already exists.
type CollisionMode string

const (
	CollisionPrompt    CollisionMode = "prompt"    // Ask interactively (default).
	CollisionOverwrite CollisionMode = "overwrite" // Always allow overwrite.
	CollisionSkip      CollisionMode = "skip"      // Never allow overwrite.
	CollisionAbort     CollisionMode = "abort"     // Abort the whole run.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Default timestamp layouts per object kind. Folders get a date-only stamp,
// files get date plus time, matching the legacy helpers.
const (
	DefaultFolderTimeFormat = "20060102"
	DefaultFileTimeFormat   = "20060102-150405"
)

// DefaultExtension is appended to file names when no extension is given.
const DefaultExtension = "txt"

// DefaultSeparator joins name components when no separator is given.
const DefaultSeparator = "-"

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Target (set from the positional arg).
	ParentPath string

	// Name components.
	Kind    ObjectKind
	Prefix  string
	MidPart string
	Suffix  string

	// Timestamp rendering.
	IncludeTimestamp bool
	TimestampValue   time.Time // Zero value means "now".
	TimestampRaw     string    // --at value before parsing.
	TimestampFormat  string    // Go layout; empty means kind default.

	// File-only.
	Extension string // Without leading dot. Default: "txt".

	// Joining.
	Separator string // Single character. Default: "-".

	// Behavior flags.
	Force       bool          // Treat an existing target as overwritable.
	StrictMode  bool          // Abort on validation failures instead of status codes.
	OnCollision CollisionMode // Default: "prompt".

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
	Quiet     bool      // Print only the computed path, no status line.
}

// DefaultConfig returns a Config with all defaults applied. Used as the base
// before [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		Kind:        KindFile,
		Extension:   DefaultExtension,
		Separator:   DefaultSeparator,
		OnCollision: CollisionPrompt,
		ColorMode:   ColorAuto,
	}
}

// TimeFormat returns the effective timestamp layout: the configured one, or
// the kind-specific default when unset.
func (c *Config) TimeFormat() string {
	if c.TimestampFormat != "" {
		return c.TimestampFormat
	}
	if c.Kind == KindFolder {
		return DefaultFolderTimeFormat
	}
	return DefaultFileTimeFormat
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that enum fields hold valid values, that the separator is a
// single character, and — outside CheckOnly mode — that a parent path and a
// prefix were given. It also parses the --at timestamp into TimestampValue.
func (c *Config) Validate() error {
	switch c.Kind {
	case KindFile, KindFolder:
		// valid
	default:
		return errors.New("invalid kind (use 'file' or 'folder')")
	}

	switch c.OnCollision {
	case CollisionPrompt, CollisionOverwrite, CollisionSkip, CollisionAbort:
		// valid
	default:
		return errors.New("invalid collision mode (use 'prompt', 'overwrite', 'skip' or 'abort')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if utf8.RuneCountInString(c.Separator) != 1 {
		return fmt.Errorf("separator must be a single character (got %q)", c.Separator)
	}

	if c.TimestampRaw != "" {
		ts, err := parseInstant(c.TimestampRaw)
		if err != nil {
			return err
		}
		c.TimestampValue = ts
		c.IncludeTimestamp = true
	}

	if c.CheckOnly {
		return nil
	}
	if c.ParentPath == "" {
		return errors.New("need exactly one parent directory argument")
	}
	if c.Prefix == "" {
		return errors.New("a name prefix is required (--prefix)")
	}
	return nil
}

// parseInstant accepts an RFC3339 instant or a bare YYYY-MM-DD date.
// The legacy helpers took either form.
func parseInstant(raw string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts, nil
	}
	if ts, err := time.Parse("2006-01-02", raw); err == nil {
		return ts, nil
	}
	return time.Time{}, fmt.Errorf("invalid --at value %q (use RFC3339 or YYYY-MM-DD)", raw)
}
