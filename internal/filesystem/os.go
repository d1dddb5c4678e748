package filesystem

import (
	"io"
	"io/fs"
	"os"
)

// readBatch is the number of entries fetched from the OS per ReadDir call
const readBatch = 64

// OSFileSystem implements FileSystem using real OS operations
type OSFileSystem struct{}

// NewOSFileSystem creates a new OSFileSystem
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Stat uses lstat so a link to a directory is removed as a link and never descended
func (osfs *OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Lstat(path)
}

func (osfs *OSFileSystem) OpenDir(path string) (DirStream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &osDirStream{f: f}, nil
}

// Remove calls unlink for files and rmdir for directories
func (osfs *OSFileSystem) Remove(path string) error {
	return os.Remove(path)
}

type osDirStream struct {
	f       *os.File
	pending []fs.DirEntry
	done    bool
}

func (s *osDirStream) Next() (DirEntry, error) {
	for len(s.pending) == 0 {
		if s.done {
			return DirEntry{}, io.EOF
		}
		entries, err := s.f.ReadDir(readBatch)
		if err == io.EOF {
			s.done = true
		} else if err != nil {
			return DirEntry{}, err
		}
		s.pending = entries
	}

	entry := s.pending[0]
	s.pending = s.pending[1:]

	return DirEntry{Name: entry.Name(), Ino: inodeOf(entry)}, nil
}

func (s *osDirStream) Close() error {
	return s.f.Close()
}
