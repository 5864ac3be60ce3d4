// Package check provides system diagnostics (--check mode): platform
// naming rules, temp-directory writability, and TTY availability for
// interactive collision prompts.
package check

import (
	"os"
	"runtime"

	"github.com/backmassage/pathforge/internal/config"
	"github.com/backmassage/pathforge/internal/naming"
	"github.com/backmassage/pathforge/internal/probe"
	"github.com/backmassage/pathforge/internal/term"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the interactive --check flow: platform naming rules, a
// writability probe against the temp directory for both object kinds, and
// whether stdin allows interactive prompting. This is informational only —
// it does not stop on failure.
func RunCheck(cfg *config.Config, log Logger) {
	log.Info("=== System Check ===")

	checkPlatform(log)
	checkTempDir(log)
	checkPrompting(cfg, log)
}

// checkPlatform reports the OS and a sample of names it would reject.
func checkPlatform(log Logger) {
	log.Info("Platform: %s/%s", runtime.GOOS, runtime.GOARCH)

	samples := []string{"report.txt", "a/b", "a:b", "a|b", "a\tb"}
	for _, s := range samples {
		fileBad := isForbidden(s, config.KindFile)
		folderBad := isForbidden(s, config.KindFolder)
		log.Info("  %-12q file: %s | folder: %s", s, verdict(fileBad), verdict(folderBad))
	}
}

func isForbidden(name string, kind config.ObjectKind) bool {
	_, found := naming.FindForbidden(name, kind)
	return found
}

func verdict(bad bool) string {
	if bad {
		return "rejected"
	}
	return "ok"
}

// checkTempDir probes the system temp directory for both object kinds.
func checkTempDir(log Logger) {
	tmp := os.TempDir()
	log.Info("Temp dir: %s", tmp)

	for _, kind := range []config.ObjectKind{config.KindFile, config.KindFolder} {
		if err := probe.Writable(tmp, kind); err != nil {
			log.Error("  %s probe failed: %v", kind, err)
		} else {
			log.Success("  %s probe ok (created and removed a throwaway %s)", kind, kind)
		}
	}
}

// checkPrompting reports whether the default 'prompt' collision policy can
// actually ask anything.
func checkPrompting(cfg *config.Config, log Logger) {
	if term.IsTerminal(os.Stdin) {
		log.Success("stdin is a TTY; interactive collision prompts available")
		return
	}
	if cfg.OnCollision == config.CollisionPrompt {
		log.Warn("stdin is not a TTY; --on-collision prompt would abort on EOF (use overwrite/skip/abort)")
	} else {
		log.Info("stdin is not a TTY (collision policy %q needs no input)", cfg.OnCollision)
	}
}
