//go:build unix

package filesystem

import (
	"io/fs"
	"syscall"
)

// inodeOf returns the entry's inode number, or zero when the entry vanished
// between the directory read and the lstat.
func inodeOf(entry fs.DirEntry) uint64 {
	info, err := entry.Info()
	if err != nil {
		return 0
	}
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return uint64(st.Ino)
	}
	return 1
}
