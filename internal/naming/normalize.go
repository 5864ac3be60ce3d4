package naming

import "strings"

// Normalize collapses artifacts of blind concatenation in path: doubled
// directory separators become one, doubled dots become a single dot, doubled
// naming separators become one, and a naming separator directly before a dot
// is dropped in favor of the dot.
//
// The first two characters are never touched, so a path starting with a
// doubled separator (a network-share root like `\\host` or `//host`) keeps
// its marker. Normalize is idempotent: it rewrites to a fixpoint.
func Normalize(path, dirSep, nameSep string) string {
	if len(path) <= 2 {
		return path
	}
	head, tail := path[:2], path[2:]

	for {
		prev := tail
		tail = strings.ReplaceAll(tail, dirSep+dirSep, dirSep)
		tail = strings.ReplaceAll(tail, "..", ".")
		if nameSep != "" && nameSep != dirSep {
			tail = strings.ReplaceAll(tail, nameSep+nameSep, nameSep)
			tail = strings.ReplaceAll(tail, nameSep+".", ".")
		}
		if tail == prev {
			return head + tail
		}
	}
}
