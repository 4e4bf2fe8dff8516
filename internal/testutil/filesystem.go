package testutil

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/afero"

	"dupe/internal/fs"
)

// MemFS is an in-memory afero filesystem for tests. It counts successful opens
// of regular files and can be told to fail Stat, Open or Remove for given paths.
type MemFS struct {
	afero.Fs

	mu         sync.Mutex
	opens      map[string]int
	statErrs   map[string]error
	openErrs   map[string]error
	removeErrs map[string]error
}

// NewMemFS creates an empty in-memory filesystem.
func NewMemFS() *MemFS {
	return &MemFS{
		Fs:         afero.NewMemMapFs(),
		opens:      make(map[string]int),
		statErrs:   make(map[string]error),
		openErrs:   make(map[string]error),
		removeErrs: make(map[string]error),
	}
}

// AddFile writes a file, creating its parent directories.
func (m *MemFS) AddFile(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := m.Fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating parent of %s: %v", path, err)
	}
	if err := afero.WriteFile(m.Fs, path, content, 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// AddDirectory creates a directory and its parents.
func (m *MemFS) AddDirectory(t *testing.T, path string) {
	t.Helper()
	if err := m.Fs.MkdirAll(path, 0755); err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
}

// Exists reports whether path is present.
func (m *MemFS) Exists(path string) bool {
	_, err := m.Fs.Stat(path)
	return err == nil
}

// FailStat makes every Stat of path return err.
func (m *MemFS) FailStat(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statErrs[path] = err
}

// FailOpen makes every Open of path return err.
func (m *MemFS) FailOpen(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.openErrs[path] = err
}

// FailRemove makes every Remove of path return err.
func (m *MemFS) FailRemove(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeErrs[path] = err
}

// Opens returns how many times the regular file at path was opened.
func (m *MemFS) Opens(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.opens[path]
}

// TotalOpens returns how many times any regular file was opened.
func (m *MemFS) TotalOpens() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.opens {
		total += n
	}
	return total
}

// Manager returns a filesystem manager backed by this filesystem.
func (m *MemFS) Manager(ignorePatterns ...string) *fs.FilesystemManager {
	return fs.NewFilesystemManager(m, ignorePatterns)
}

func (m *MemFS) Stat(name string) (os.FileInfo, error) {
	m.mu.Lock()
	err := m.statErrs[name]
	m.mu.Unlock()
	if err != nil {
		return nil, &os.PathError{Op: "stat", Path: name, Err: err}
	}
	return m.Fs.Stat(name)
}

func (m *MemFS) Open(name string) (afero.File, error) {
	return m.OpenFile(name, os.O_RDONLY, 0)
}

func (m *MemFS) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	m.mu.Lock()
	err := m.openErrs[name]
	m.mu.Unlock()
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: name, Err: err}
	}

	f, err := m.Fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	if info, statErr := f.Stat(); statErr == nil && info.Mode().IsRegular() {
		m.mu.Lock()
		m.opens[name]++
		m.mu.Unlock()
	}
	return f, nil
}

func (m *MemFS) Remove(name string) error {
	m.mu.Lock()
	err := m.removeErrs[name]
	m.mu.Unlock()
	if err != nil {
		return &os.PathError{Op: "remove", Path: name, Err: err}
	}
	return m.Fs.Remove(name)
}

// Compile-time check
var _ afero.Fs = (*MemFS)(nil)
