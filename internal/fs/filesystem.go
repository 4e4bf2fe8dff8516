package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"dupe/internal/dupe"
)

// FilesystemManager implements dupe.FilesystemManager on top of an afero.Fs.
// Production code uses the OS filesystem; tests use an in-memory one.
type FilesystemManager struct {
	fs     afero.Fs
	ignore *IgnoreMatcher
}

// NewOSFilesystemManager creates a filesystem manager that operates on the real filesystem.
func NewOSFilesystemManager(ignorePatterns []string) *FilesystemManager {
	return NewFilesystemManager(afero.NewOsFs(), ignorePatterns)
}

// NewFilesystemManager creates a filesystem manager backed by fsys.
func NewFilesystemManager(fsys afero.Fs, ignorePatterns []string) *FilesystemManager {
	patterns := append(append([]string{}, defaultIgnorePatterns...), ignorePatterns...)
	return &FilesystemManager{
		fs:     fsys,
		ignore: NewIgnoreMatcher(patterns),
	}
}

// Resolve converts a raw path to an absolute, cleaned Path and stats it.
func (m *FilesystemManager) Resolve(rawPath string) (*dupe.Path, error) {
	absPath, err := filepath.Abs(rawPath)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	info, err := m.fs.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("stat path: %w", err)
	}

	return dupe.NewPath(absPath, info.IsDir(), info), nil
}

// FindFiles recursively discovers regular files under root in lexical order.
// Symlinks, devices, pipes and sockets are not followed or returned.
// Ignore patterns from the config and from root's .dupeignore are applied to
// paths relative to root; an ignored directory is not descended into.
func (m *FilesystemManager) FindFiles(root *dupe.Path, skip dupe.SkipFunc) ([]*dupe.Path, error) {
	if !root.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", root.String())
	}

	rootPath := root.String()
	extra, err := ParseIgnoreFile(m.fs, filepath.Join(rootPath, IgnoreFileName))
	if err != nil {
		skip(filepath.Join(rootPath, IgnoreFileName), err)
	}
	ignore := m.ignore.With(extra)

	var paths []*dupe.Path
	err = afero.Walk(m.fs, rootPath, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			if p == rootPath {
				return err
			}
			skip(p, err)
			return nil
		}

		if p != rootPath {
			rel, relErr := filepath.Rel(rootPath, p)
			if relErr == nil && ignore.Match(rel) {
				if info.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		if !info.Mode().IsRegular() {
			return nil
		}
		paths = append(paths, dupe.NewPath(p, false, info))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory: %w", err)
	}

	return paths, nil
}

// Open opens a file for reading.
func (m *FilesystemManager) Open(path string) (io.ReadCloser, error) {
	return m.fs.Open(path)
}

// Remove deletes a single file.
func (m *FilesystemManager) Remove(path string) error {
	return m.fs.Remove(path)
}

// Compile-time check that FilesystemManager implements dupe.FilesystemManager interface
var _ dupe.FilesystemManager = (*FilesystemManager)(nil)
