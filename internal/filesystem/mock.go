package filesystem

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ErrNotEmpty is returned by MockFileSystem.Remove for a directory with children
var ErrNotEmpty = errors.New("directory not empty")

// MockFileSystem provides in-memory filesystem for testing
type MockFileSystem struct {
	files   map[string]*MockFile
	holes   map[string][]string
	nextIno uint64

	failStat   map[string]error
	failOpen   map[string]error
	failRemove map[string]error

	removed     []string
	openStreams int
}

// MockFile represents a file in the mock filesystem
type MockFile struct {
	Content []byte
	Mode    fs.FileMode
	ModTime time.Time
	IsDir   bool
	Ino     uint64
}

// mockFileInfo implements fs.FileInfo
type mockFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() fs.FileMode  { return m.mode }
func (m *mockFileInfo) ModTime() time.Time { return m.modTime }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() interface{}   { return nil }

// NewMockFileSystem creates a new MockFileSystem with an empty root directory
func NewMockFileSystem() *MockFileSystem {
	mfs := &MockFileSystem{
		files:      make(map[string]*MockFile),
		holes:      make(map[string][]string),
		failStat:   make(map[string]error),
		failOpen:   make(map[string]error),
		failRemove: make(map[string]error),
		nextIno:    1,
	}
	mfs.AddDir("/")
	return mfs
}

func (mfs *MockFileSystem) ino() uint64 {
	mfs.nextIno++
	return mfs.nextIno
}

// AddFile adds a file to the mock filesystem
func (mfs *MockFileSystem) AddFile(path string, content []byte) {
	cleanPath := filepath.Clean(path)
	mfs.ensureParents(cleanPath)
	mfs.files[cleanPath] = &MockFile{
		Content: content,
		Mode:    0644,
		ModTime: time.Now(),
		IsDir:   false,
		Ino:     mfs.ino(),
	}
}

// AddDir adds a directory to the mock filesystem
func (mfs *MockFileSystem) AddDir(path string) {
	cleanPath := filepath.Clean(path)
	mfs.ensureParents(cleanPath)
	if _, exists := mfs.files[cleanPath]; !exists {
		mfs.files[cleanPath] = &MockFile{
			Mode:    0755 | fs.ModeDir,
			ModTime: time.Now(),
			IsDir:   true,
			Ino:     mfs.ino(),
		}
	}
}

// AddDeletedSlot records a zero-inode entry named name inside dir, the way
// a directory keeps a slot around after one of its entries was unlinked.
func (mfs *MockFileSystem) AddDeletedSlot(dir, name string) {
	cleanDir := filepath.Clean(dir)
	mfs.holes[cleanDir] = append(mfs.holes[cleanDir], name)
}

func (mfs *MockFileSystem) ensureParents(cleanPath string) {
	dir := filepath.Dir(cleanPath)
	if dir == cleanPath || dir == "." {
		return
	}
	if _, exists := mfs.files[dir]; !exists {
		mfs.AddDir(dir)
	}
}

// FailStat makes Stat(path) return err
func (mfs *MockFileSystem) FailStat(path string, err error) {
	mfs.failStat[filepath.Clean(path)] = err
}

// FailOpen makes OpenDir(path) return err
func (mfs *MockFileSystem) FailOpen(path string, err error) {
	mfs.failOpen[filepath.Clean(path)] = err
}

// FailRemove makes Remove(path) return err
func (mfs *MockFileSystem) FailRemove(path string, err error) {
	mfs.failRemove[filepath.Clean(path)] = err
}

func (mfs *MockFileSystem) Stat(path string) (fs.FileInfo, error) {
	cleanPath := filepath.Clean(path)
	if err, ok := mfs.failStat[cleanPath]; ok {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: err}
	}

	file, exists := mfs.files[cleanPath]
	if !exists {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}

	return &mockFileInfo{
		name:    filepath.Base(cleanPath),
		size:    int64(len(file.Content)),
		mode:    file.Mode,
		modTime: file.ModTime,
		isDir:   file.IsDir,
	}, nil
}

// OpenDir snapshots the directory listing at open time. The listing starts
// with "." and "..", followed by children sorted by name, followed by any
// deleted slots.
func (mfs *MockFileSystem) OpenDir(path string) (DirStream, error) {
	cleanPath := filepath.Clean(path)
	if err, ok := mfs.failOpen[cleanPath]; ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: err}
	}

	file, exists := mfs.files[cleanPath]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	if !file.IsDir {
		return nil, &fs.PathError{Op: "open", Path: path, Err: errors.New("not a directory")}
	}

	parentIno := file.Ino
	if parent, ok := mfs.files[filepath.Dir(cleanPath)]; ok {
		parentIno = parent.Ino
	}

	entries := []DirEntry{
		{Name: ".", Ino: file.Ino},
		{Name: "..", Ino: parentIno},
	}
	entries = append(entries, mfs.children(cleanPath)...)
	for _, name := range mfs.holes[cleanPath] {
		entries = append(entries, DirEntry{Name: name, Ino: 0})
	}

	mfs.openStreams++
	return &mockDirStream{mfs: mfs, entries: entries}, nil
}

func (mfs *MockFileSystem) children(cleanPath string) []DirEntry {
	var entries []DirEntry
	for p, f := range mfs.files {
		if p != cleanPath && filepath.Dir(p) == cleanPath {
			entries = append(entries, DirEntry{Name: filepath.Base(p), Ino: f.Ino})
		}
	}

	// Sort entries by name for consistent ordering
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries
}

func (mfs *MockFileSystem) Remove(path string) error {
	cleanPath := filepath.Clean(path)
	if err, ok := mfs.failRemove[cleanPath]; ok {
		return &fs.PathError{Op: "remove", Path: path, Err: err}
	}

	file, exists := mfs.files[cleanPath]
	if !exists {
		return &fs.PathError{Op: "remove", Path: path, Err: fs.ErrNotExist}
	}
	if file.IsDir && len(mfs.children(cleanPath)) > 0 {
		return &fs.PathError{Op: "remove", Path: path, Err: ErrNotEmpty}
	}

	delete(mfs.files, cleanPath)
	delete(mfs.holes, cleanPath)
	mfs.removed = append(mfs.removed, cleanPath)
	return nil
}

// Exists reports whether path is present
func (mfs *MockFileSystem) Exists(path string) bool {
	_, exists := mfs.files[filepath.Clean(path)]
	return exists
}

// Removed returns every successfully removed path in removal order
func (mfs *MockFileSystem) Removed() []string {
	return append([]string(nil), mfs.removed...)
}

// OpenStreams returns the number of directory streams not yet closed
func (mfs *MockFileSystem) OpenStreams() int {
	return mfs.openStreams
}

// PrintTree writes the filesystem tree to w (for debugging)
func (mfs *MockFileSystem) PrintTree(w io.Writer) {
	var paths []string
	for p := range mfs.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		marker := "f"
		if mfs.files[p].IsDir {
			marker = "d"
		}
		depth := strings.Count(strings.TrimPrefix(p, "/"), "/")
		if p == "/" {
			depth = -1
		}
		fmt.Fprintf(w, "%s%s %s\n", strings.Repeat("  ", depth+1), marker, p)
	}
}

type mockDirStream struct {
	mfs     *MockFileSystem
	entries []DirEntry
	closed  bool
}

func (s *mockDirStream) Next() (DirEntry, error) {
	if s.closed {
		return DirEntry{}, fs.ErrClosed
	}
	if len(s.entries) == 0 {
		return DirEntry{}, io.EOF
	}
	entry := s.entries[0]
	s.entries = s.entries[1:]
	return entry, nil
}

func (s *mockDirStream) Close() error {
	if s.closed {
		return fs.ErrClosed
	}
	s.closed = true
	s.mfs.openStreams--
	return nil
}
