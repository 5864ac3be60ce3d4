// Command pathforge is the CLI entrypoint for the output-path builder.
//
// It parses flags, validates configuration, and either runs system
// diagnostics (--check) or builds one collision-checked path, printing it to
// stdout. The process exit status mirrors the result's status code.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/pathforge/internal/builder"
	"github.com/backmassage/pathforge/internal/check"
	"github.com/backmassage/pathforge/internal/collide"
	"github.com/backmassage/pathforge/internal/config"
	"github.com/backmassage/pathforge/internal/display"
	"github.com/backmassage/pathforge/internal/logging"
	"github.com/backmassage/pathforge/internal/prompt"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" (no make), these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "pathforge: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "pathforge: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pathforge: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	if !cfg.Quiet {
		display.PrintBanner()
	}

	if cfg.CheckOnly {
		check.RunCheck(&cfg, log)
		return 0
	}

	// Resolve the parent to an absolute path up front; the builder itself
	// never resolves relative input.
	cfg.ParentPath = absPath(cfg.ParentPath)

	log.Debug(cfg.Verbose, "Pathforge v%s (%s)", version, commit)
	log.Debug(cfg.Verbose, "Parent: %s", cfg.ParentPath)
	log.Debug(cfg.Verbose, "Kind: %s, collision policy: %s", cfg.Kind, cfg.OnCollision)

	// Phase 3: Build the path.
	b := builder.New(providerFor(&cfg))
	res, err := b.Build(builder.NewRequest(&cfg))
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	// Phase 4: Report. The path goes to stdout so scripts can capture it;
	// the status line goes through the logger.
	if res.Path != "" {
		fmt.Fprintln(os.Stdout, res.Path)
	}
	if !cfg.Quiet {
		line := display.StatusLine(res)
		switch display.SeverityOf(res.ExitCode) {
		case display.SeverityOK:
			log.Success("%s", line)
		case display.SeverityWarn:
			log.Warn("%s", line)
		default:
			log.Error("%s", line)
		}
	}

	return int(res.ExitCode)
}

// providerFor maps the configured collision policy to a decision provider.
func providerFor(cfg *config.Config) collide.DecisionProvider {
	switch cfg.OnCollision {
	case config.CollisionOverwrite:
		return collide.Always{}
	case config.CollisionSkip:
		return collide.Never{}
	case config.CollisionAbort:
		return collide.AbortPolicy{}
	default:
		return prompt.New()
	}
}

// absPath returns the absolute, symlink-resolved form of path. A parent that
// does not exist yet cannot be symlink-resolved; it is returned merely
// absolute and the builder reports its status.
func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
