package dupe

import (
	"encoding/hex"
	"path/filepath"
)

// FileEntry is a regular, non-empty file observed during traversal.
// Size is captured when the file is found and is not re-validated later.
type FileEntry struct {
	Path string
	Size int64
}

// Dir returns the directory containing the file.
func (e FileEntry) Dir() string {
	return filepath.Dir(e.Path)
}

// Grouping is any partition of files whose buckets can be refined by content hash.
type Grouping interface {
	// Buckets returns the members of each group, in group order.
	Buckets() [][]FileEntry
}

// SizeGroups buckets files by exact byte size.
// Keys keep first-seen order and members keep traversal order.
type SizeGroups struct {
	keys   []int64
	groups map[int64][]FileEntry
}

// NewSizeGroups creates an empty SizeGroups.
func NewSizeGroups() *SizeGroups {
	return &SizeGroups{groups: make(map[int64][]FileEntry)}
}

// Add appends entry to the bucket for its size.
func (g *SizeGroups) Add(entry FileEntry) {
	if _, ok := g.groups[entry.Size]; !ok {
		g.keys = append(g.keys, entry.Size)
	}
	g.groups[entry.Size] = append(g.groups[entry.Size], entry)
}

// Sizes returns the distinct sizes in first-seen order.
func (g *SizeGroups) Sizes() []int64 {
	return append([]int64(nil), g.keys...)
}

// Files returns the members observed with the given size.
func (g *SizeGroups) Files(size int64) []FileEntry {
	return g.groups[size]
}

// Len returns the number of distinct sizes.
func (g *SizeGroups) Len() int {
	return len(g.keys)
}

// Count returns the total number of files across all buckets.
func (g *SizeGroups) Count() int {
	n := 0
	for _, files := range g.groups {
		n += len(files)
	}
	return n
}

func (g *SizeGroups) Buckets() [][]FileEntry {
	buckets := make([][]FileEntry, 0, len(g.keys))
	for _, size := range g.keys {
		buckets = append(buckets, g.groups[size])
	}
	return buckets
}

// Digest is the output of a hash function over (part of) a file.
type Digest []byte

// String returns the digest as lowercase hex.
func (d Digest) String() string {
	return hex.EncodeToString(d)
}

// HashGroup is the set of files sharing one digest.
// Files is mutated in place by the resolver.
type HashGroup struct {
	Digest Digest
	Files  []FileEntry
}

// Len returns the number of members still in the group.
func (g *HashGroup) Len() int {
	return len(g.Files)
}

// remove deletes the member at index i, preserving the order of the rest.
func (g *HashGroup) remove(i int) FileEntry {
	entry := g.Files[i]
	g.Files = append(g.Files[:i], g.Files[i+1:]...)
	return entry
}

// indexInDir returns the index of the first member located in dir, or -1.
func (g *HashGroup) indexInDir(dir string) int {
	for i, f := range g.Files {
		if f.Dir() == dir {
			return i
		}
	}
	return -1
}

// HashGroups maps digests to groups. Groups are held by pointer in first-seen
// order so that a change made through one reference is visible to every holder.
type HashGroups struct {
	order  []*HashGroup
	byHash map[string]*HashGroup
}

// NewHashGroups creates an empty HashGroups.
func NewHashGroups() *HashGroups {
	return &HashGroups{byHash: make(map[string]*HashGroup)}
}

// Add appends entry to the group for digest, creating it if needed.
func (g *HashGroups) Add(digest Digest, entry FileEntry) {
	key := string(digest)
	group, ok := g.byHash[key]
	if !ok {
		group = &HashGroup{Digest: digest}
		g.byHash[key] = group
		g.order = append(g.order, group)
	}
	group.Files = append(group.Files, entry)
}

// Get returns the group for digest, or nil.
func (g *HashGroups) Get(digest Digest) *HashGroup {
	return g.byHash[string(digest)]
}

// Groups returns every group in first-seen order, singletons included.
func (g *HashGroups) Groups() []*HashGroup {
	return append([]*HashGroup(nil), g.order...)
}

// Duplicates returns the groups that still have at least two members.
func (g *HashGroups) Duplicates() []*HashGroup {
	var out []*HashGroup
	for _, group := range g.order {
		if group.Len() > 1 {
			out = append(out, group)
		}
	}
	return out
}

// Len returns the number of distinct digests.
func (g *HashGroups) Len() int {
	return len(g.order)
}

// Reclaimable returns the bytes that would be freed by keeping exactly one
// member of every duplicate group.
func (g *HashGroups) Reclaimable() int64 {
	var total int64
	for _, group := range g.Duplicates() {
		total += group.Files[0].Size * int64(group.Len()-1)
	}
	return total
}

func (g *HashGroups) Buckets() [][]FileEntry {
	buckets := make([][]FileEntry, 0, len(g.order))
	for _, group := range g.order {
		buckets = append(buckets, group.Files)
	}
	return buckets
}
