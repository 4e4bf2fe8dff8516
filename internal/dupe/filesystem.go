package dupe

import "io"

// SkipFunc is called for every entry a walk could not inspect.
// The entry is left out of the result and the walk continues.
type SkipFunc func(path string, err error)

// FilesystemManager provides an interface for filesystem operations.
// It abstracts file access to enable testing without touching the real filesystem.
type FilesystemManager interface {
	// Resolve converts a raw path to an absolute Path and stats it.
	Resolve(rawPath string) (*Path, error)

	// FindFiles recursively discovers regular files under root.
	// Entries that cannot be inspected are reported through skip and omitted.
	// An error is returned only when root itself cannot be walked.
	FindFiles(root *Path, skip SkipFunc) ([]*Path, error)

	// Open opens a file for reading.
	Open(path string) (io.ReadCloser, error)

	// Remove deletes a single file.
	Remove(path string) error
}
