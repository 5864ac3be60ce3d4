// Package display formats builder results and prints the CLI banner.
package display

import (
	"fmt"

	"github.com/backmassage/pathforge/internal/builder"
)

// StatusLine renders one human-readable line for a build outcome, e.g.
// "status 4 (exists-overwritable): "/out/report.txt" already exists, can be overwritten".
func StatusLine(res builder.Result) string {
	return fmt.Sprintf("status %d (%s): %s", int(res.ExitCode), res.ExitCode, res.ExitDescription)
}

// Severity buckets an exit code for log-level selection: 0 is success,
// 4 and 5 are warnings (the path exists but the call worked), the rest are
// errors.
type Severity int

const (
	SeverityOK Severity = iota
	SeverityWarn
	SeverityError
)

// SeverityOf returns the severity bucket for code.
func SeverityOf(code builder.ExitCode) Severity {
	switch code {
	case builder.ExitOK:
		return SeverityOK
	case builder.ExitOverwriteAllowed, builder.ExitOverwriteDenied:
		return SeverityWarn
	}
	return SeverityError
}
