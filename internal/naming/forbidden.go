package naming

import (
	"runtime"
	"strings"

	"github.com/backmassage/pathforge/internal/config"
)

// Forbidden printable characters per segment context. File-name segments are
// stricter than path segments, matching the host platform's definitions
// (on Windows the file set adds the characters that are legal in a path but
// not inside a single name). Control characters are rejected everywhere.
var (
	forbiddenFileChars string
	forbiddenPathChars string
)

func init() {
	if runtime.GOOS == "windows" {
		forbiddenFileChars = `<>:"/\|?*`
		forbiddenPathChars = `<>"|`
		return
	}
	forbiddenFileChars = "/\x00"
	forbiddenPathChars = "/\x00"
}

// forbiddenSet returns the printable forbidden characters for the kind's
// segment context: file-name rules for files, path-segment rules for folders.
func forbiddenSet(kind config.ObjectKind) string {
	if kind == config.KindFolder {
		return forbiddenPathChars
	}
	return forbiddenFileChars
}

// FindForbidden returns the first rune in name that is not acceptable in a
// segment of the given kind, and whether one was found.
func FindForbidden(name string, kind config.ObjectKind) (rune, bool) {
	set := forbiddenSet(kind)
	for _, r := range name {
		if r < 32 || r == 127 || strings.ContainsRune(set, r) {
			return r, true
		}
	}
	return 0, false
}
