package filesystem

import (
	"io/fs"
)

// DirEntry is a single slot read from a directory stream.
// An Ino of zero marks a deleted or empty slot.
type DirEntry struct {
	Name string
	Ino  uint64
}

// Skip reports whether the entry must never be walked or deleted
func (e DirEntry) Skip() bool {
	return e.Ino == 0 || e.Name == "." || e.Name == ".."
}

// DirStream enumerates the entries of an open directory.
// Next returns io.EOF once every entry has been read.
type DirStream interface {
	Next() (DirEntry, error)
	Close() error
}

// FileSystem provides an abstraction over the primitives rm needs for testability
type FileSystem interface {
	// Stat returns metadata for path itself; symbolic links are not followed
	Stat(path string) (fs.FileInfo, error)

	// OpenDir opens path for streamed enumeration
	OpenDir(path string) (DirStream, error)

	// Remove unlinks a file or an empty directory
	Remove(path string) error
}
