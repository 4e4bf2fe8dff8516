package hashing

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"errors"
	"fmt"
	"hash"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// DefaultAlgorithm is used when the config names no algorithm.
const DefaultAlgorithm = "sha1"

// ErrUnknownAlgorithm is returned for an algorithm name with no constructor.
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

var algorithms = map[string]func() hash.Hash{
	"md5":    md5.New,
	"sha1":   sha1.New,
	"sha256": sha256.New,
	// xxhash is not cryptographic; it is offered for fast scans of trusted trees.
	"xxhash": func() hash.Hash { return xxhash.New() },
}

// New returns the constructor for the named algorithm.
// The name is case-insensitive; an empty name selects DefaultAlgorithm.
func New(name string) (func() hash.Hash, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultAlgorithm
	}
	ctor, ok := algorithms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %s)", ErrUnknownAlgorithm, name, strings.Join(Names(), ", "))
	}
	return ctor, nil
}

// Names returns the supported algorithm names, sorted.
func Names() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
