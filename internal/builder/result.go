package builder

// ExitCode classifies the outcome of one path-building request. Codes other
// than ExitOK are statuses, not failures of the call itself: the caller
// decides what to do with them.
type ExitCode int

const (
	ExitOK               ExitCode = 0 // Path computed, no conflicts.
	ExitParentMissing    ExitCode = 1 // Parent path does not exist.
	ExitBadName          ExitCode = 2 // Name contains forbidden characters.
	ExitNotWritable      ExitCode = 3 // Parent exists but is not writable.
	ExitOverwriteAllowed ExitCode = 4 // Target exists; overwrite allowed.
	ExitOverwriteDenied  ExitCode = 5 // Target exists; overwrite declined.
)

// String returns a short label for the code.
func (c ExitCode) String() string {
	switch c {
	case ExitOK:
		return "ok"
	case ExitParentMissing:
		return "parent-missing"
	case ExitBadName:
		return "bad-name"
	case ExitNotWritable:
		return "not-writable"
	case ExitOverwriteAllowed:
		return "exists-overwritable"
	case ExitOverwriteDenied:
		return "exists-kept"
	}
	return "unknown"
}

// Result is the outcome of one [Builder.Build] call. Path is populated
// whenever assembly succeeded, even alongside a non-zero code, so callers can
// report what was attempted.
type Result struct {
	Path            string
	ExitCode        ExitCode
	ExitDescription string
}

// FilePath is the file-flavored alias for Path, for callers building file
// targets. The value is identical to Path.
func (r Result) FilePath() string { return r.Path }

// FolderPath is the folder-flavored alias for Path.
func (r Result) FolderPath() string { return r.Path }
