// Package probe verifies that a parent directory exists and is writable by
// creating and immediately removing a throwaway object in it.
//
// The check is inherently racy: writability confirmed here can be revoked
// before the caller creates the real artifact, and a concurrent writer can
// claim the computed path in between. That time-of-check/time-of-use gap is
// an accepted limitation of the create-then-delete idiom; callers needing
// race-free collision semantics must serialize externally.
package probe

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/backmassage/pathforge/internal/config"
)

// Sentinel errors returned by Writable.
var (
	ErrParentMissing = errors.New("parent path does not exist")
	ErrNotWritable   = errors.New("path is not writable")
)

// Writable checks that parent exists, is a directory, and accepts a new
// object of the given kind. The throwaway object carries a UUID name so it
// can never collide with an assembled artifact name, and it is removed on
// every exit path; removal failures are swallowed so they cannot mask the
// writability verdict.
func Writable(parent string, kind config.ObjectKind) error {
	fi, err := os.Stat(parent)
	if err != nil || !fi.IsDir() {
		return fmt.Errorf("%w: %q", ErrParentMissing, parent)
	}

	scratch := filepath.Join(parent, ".pathforge-"+uuid.NewString())
	defer os.Remove(scratch)

	if kind == config.KindFolder {
		if err := os.Mkdir(scratch, 0o755); err != nil {
			return fmt.Errorf("%w: %q", ErrNotWritable, parent)
		}
		return nil
	}

	f, err := os.OpenFile(scratch, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrNotWritable, parent)
	}
	_ = f.Close()
	return nil
}
