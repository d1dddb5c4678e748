package filesystem

import (
	"os"
	"path/filepath"
)

// Join appends child to parent with exactly one separator between them.
// The result is never truncated and is not otherwise cleaned, so "a//" + "b"
// keeps the parent's leading separators as given.
func Join(parent, child string) string {
	if parent == "" {
		return child
	}
	if os.IsPathSeparator(parent[len(parent)-1]) {
		return parent + child
	}
	return parent + string(filepath.Separator) + child
}
