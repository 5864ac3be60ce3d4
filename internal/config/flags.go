package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into naming, timestamp, behavior, display, and utility.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, missing positional
// arg).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("pathforge", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	// Exit-triggering and color-override flags are captured as bools and
	// applied after Parse, so Config defaults hold unless the user passes them.
	var extra extraFlags

	defineNamingFlags(fs, cfg)
	defineTimestampFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &extra)
	defineUtilityFlags(fs, &extra)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyExtraFlags(cfg, &extra)

	if extra.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if extra.showVersion {
		fmt.Fprintln(os.Stdout, "pathforge v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// extraFlags holds boolean flags that are applied after Parse. These either
// override a default (forceColor/noColor) or trigger exit (showHelp, showVersion).
type extraFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineNamingFlags registers --kind, --prefix, --mid, --suffix, --ext, --sep.
func defineNamingFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Var(&objectKindValue{&cfg.Kind}, "kind", "Object kind: file | folder")
	fs.Var(&objectKindValue{&cfg.Kind}, "k", "Same as --kind")
	fs.StringVar(&cfg.Prefix, "prefix", "", "Leading name component (required)")
	fs.StringVar(&cfg.Prefix, "p", "", "Same as --prefix")
	fs.StringVar(&cfg.MidPart, "mid", "", "Middle name component")
	fs.StringVar(&cfg.MidPart, "m", "", "Same as --mid")
	fs.StringVar(&cfg.Suffix, "suffix", "", "Trailing name component")
	fs.StringVar(&cfg.Suffix, "s", "", "Same as --suffix")
	fs.StringVar(&cfg.Extension, "ext", cfg.Extension, "File extension without dot (files only)")
	fs.StringVar(&cfg.Separator, "sep", cfg.Separator, "Character joining name components")
}

// defineTimestampFlags registers --timestamp, --at, --time-format.
func defineTimestampFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.IncludeTimestamp, "timestamp", false, "Include a timestamp component (current time)")
	fs.BoolVar(&cfg.IncludeTimestamp, "t", false, "Same as --timestamp")
	fs.StringVar(&cfg.TimestampRaw, "at", "", "Fixed instant for the timestamp (RFC3339 or YYYY-MM-DD)")
	fs.StringVar(&cfg.TimestampFormat, "time-format", "", "Timestamp layout in Go reference-time form")
}

// defineBehaviorFlags registers --force, --strict, --on-collision.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.Force, "force", false, "Treat an existing target as overwritable")
	fs.BoolVar(&cfg.Force, "f", false, "Same as --force")
	fs.BoolVar(&cfg.StrictMode, "strict", false, "Abort on failures instead of reporting a status code")
	fs.Var(&collisionModeValue{&cfg.OnCollision}, "on-collision", "Collision policy: prompt | overwrite | skip | abort")
}

// defineDisplayFlags registers --color, --no-color, --verbose, --quiet, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, e *extraFlags) {
	fs.BoolVar(&e.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&e.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Print only the computed path")
	fs.BoolVar(&cfg.Quiet, "q", false, "Same as --quiet")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, e *extraFlags) {
	fs.BoolVar(&e.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&e.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&e.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&e.showHelp, "h", false, "Same as --help")
}

// applyExtraFlags copies override flag values into cfg.
func applyExtraFlags(cfg *Config, e *extraFlags) {
	if e.noColor {
		cfg.ColorMode = ColorNever
	} else if e.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets ParentPath from the single positional arg when not
// in CheckOnly mode.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly {
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("need exactly one parent directory argument")
	}
	cfg.ParentPath = NormalizeDirArg(args[0])
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 30 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "Pathforge v" + version + " — deterministic output-path builder"},
		{"", ""},
		{"  pathforge [OPTIONS] <parent_dir>", ""},
		{"", ""},
		{"Naming", ""},
		{"  -k, --kind <file|folder>", "Object kind (default: file)"},
		{"  -p, --prefix <name>", "Leading name component (required)"},
		{"  -m, --mid <name>", "Middle name component"},
		{"  -s, --suffix <name>", "Trailing name component"},
		{"  --ext <ext>", "File extension without dot (default: txt)"},
		{"  --sep <char>", "Component separator (default: -)"},
		{"", ""},
		{"Timestamp", ""},
		{"  -t, --timestamp", "Include a timestamp component (current time)"},
		{"  --at <instant>", "Fixed instant (RFC3339 or YYYY-MM-DD); implies -t"},
		{"  --time-format <layout>", "Go reference-time layout (default per kind)"},
		{"", ""},
		{"Behavior", ""},
		{"  -f, --force", "Treat an existing target as overwritable"},
		{"  --strict", "Abort on failures instead of reporting a status code"},
		{"  --on-collision <policy>", "prompt | overwrite | skip | abort (default: prompt)"},
		{"", ""},
		{"Display", ""},
		{"  -q, --quiet", "Print only the computed path"},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "System diagnostics (platform, temp dir, TTY)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// flag.Value adapters so we can use enum types (ObjectKind, CollisionMode) with flag.Var.

type objectKindValue struct{ p *ObjectKind }

func (o *objectKindValue) String() string { return string(*o.p) }
func (o *objectKindValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "file":
		*o.p = KindFile
	case "folder", "dir", "directory":
		*o.p = KindFolder
	default:
		return fmt.Errorf("invalid kind %q (use 'file' or 'folder')", s)
	}
	return nil
}

type collisionModeValue struct{ p *CollisionMode }

func (c *collisionModeValue) String() string { return string(*c.p) }
func (c *collisionModeValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "prompt":
		*c.p = CollisionPrompt
	case "overwrite":
		*c.p = CollisionOverwrite
	case "skip":
		*c.p = CollisionSkip
	case "abort":
		*c.p = CollisionAbort
	default:
		return fmt.Errorf("invalid collision mode %q (use 'prompt', 'overwrite', 'skip' or 'abort')", s)
	}
	return nil
}
