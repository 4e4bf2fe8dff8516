package dupe

import (
	"errors"
	"fmt"
	"hash"
)

const (
	// DefaultPrefixSize is the number of leading bytes hashed in the PREFIX pass.
	DefaultPrefixSize int64 = 1024

	// DefaultChunkSize is the read size used when streaming a FULL hash.
	DefaultChunkSize = 64 * 1024
)

// HashScope selects how much of a file a digest covers.
type HashScope int

const (
	// ScopePrefix hashes at most HashOptions.PrefixSize leading bytes.
	ScopePrefix HashScope = iota
	// ScopeFull hashes the entire file.
	ScopeFull
)

func (s HashScope) String() string {
	switch s {
	case ScopePrefix:
		return "prefix"
	case ScopeFull:
		return "full"
	default:
		return fmt.Sprintf("HashScope(%d)", int(s))
	}
}

// ErrInvalidHashOptions is returned by Validate.
var ErrInvalidHashOptions = errors.New("invalid hash options")

// HashOptions configures digest computation.
type HashOptions struct {
	Algorithm  string           // name, for logging only
	New        func() hash.Hash // constructs a fresh hash per file
	PrefixSize int64
	ChunkSize  int
}

// Validate reports configuration errors. Zero sizes are replaced by defaults.
func (o *HashOptions) Validate() error {
	if o.New == nil {
		return fmt.Errorf("%w: no hash constructor", ErrInvalidHashOptions)
	}
	if o.PrefixSize == 0 {
		o.PrefixSize = DefaultPrefixSize
	}
	if o.ChunkSize == 0 {
		o.ChunkSize = DefaultChunkSize
	}
	if o.PrefixSize < 0 {
		return fmt.Errorf("%w: prefix size must be positive, got %d", ErrInvalidHashOptions, o.PrefixSize)
	}
	if o.ChunkSize < 0 {
		return fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidHashOptions, o.ChunkSize)
	}
	return nil
}

// PromptOptions holds the defaults used for empty answers to yes/no prompts.
type PromptOptions struct {
	BulkDefault    Default
	ConfirmDefault Default
}

// DefaultPromptOptions answers yes to the bulk shortcut and no to the final deletion.
func DefaultPromptOptions() PromptOptions {
	return PromptOptions{
		BulkDefault:    DefaultYes,
		ConfirmDefault: DefaultNo,
	}
}
