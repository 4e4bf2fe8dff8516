package dupe_test

import (
	"testing"

	"dupe/internal/dupe"
)

func TestSizeGroups(t *testing.T) {
	t.Parallel()
	g := dupe.NewSizeGroups()
	g.Add(dupe.FileEntry{Path: "/a", Size: 3})
	g.Add(dupe.FileEntry{Path: "/b", Size: 1})
	g.Add(dupe.FileEntry{Path: "/c", Size: 3})

	if got := g.Sizes(); len(got) != 2 || got[0] != 3 || got[1] != 1 {
		t.Errorf("Sizes() = %v, want [3 1]", got)
	}
	buckets := g.Buckets()
	if len(buckets) != 2 {
		t.Fatalf("Buckets() = %d buckets, want 2", len(buckets))
	}
	if got := paths(buckets[0]); !equalStrings(got, []string{"/a", "/c"}) {
		t.Errorf("Buckets()[0] = %v, want [/a /c]", got)
	}
	if g.Count() != 3 {
		t.Errorf("Count() = %d, want 3", g.Count())
	}
}

func TestHashGroups(t *testing.T) {
	t.Parallel()
	g := dupe.NewHashGroups()
	g.Add(dupe.Digest{0xbe, 0xef}, dupe.FileEntry{Path: "/x/a", Size: 100})
	g.Add(dupe.Digest{0x01}, dupe.FileEntry{Path: "/x/solo", Size: 7})
	g.Add(dupe.Digest{0xbe, 0xef}, dupe.FileEntry{Path: "/y/a", Size: 100})
	g.Add(dupe.Digest{0xbe, 0xef}, dupe.FileEntry{Path: "/z/a", Size: 100})

	if g.Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.Len())
	}
	dups := g.Duplicates()
	if len(dups) != 1 || dups[0].Digest.String() != "beef" {
		t.Fatalf("Duplicates() = %+v, want the beef group", dups)
	}
	if got := g.Reclaimable(); got != 200 {
		t.Errorf("Reclaimable() = %d, want 200", got)
	}
	if g.Get(dupe.Digest{0x02}) != nil {
		t.Error("Get() of an unknown digest returned a group")
	}

	// Groups hands out the same group values that Get returns.
	if g.Groups()[0] != g.Get(dupe.Digest{0xbe, 0xef}) {
		t.Error("Groups()[0] and Get() returned different groups")
	}
}

func TestFileEntry_Dir(t *testing.T) {
	t.Parallel()
	if got := (dupe.FileEntry{Path: "/photos/2020/img.jpg"}).Dir(); got != "/photos/2020" {
		t.Errorf("Dir() = %q, want /photos/2020", got)
	}
}

func TestHashScope_String(t *testing.T) {
	t.Parallel()
	if dupe.ScopePrefix.String() != "prefix" || dupe.ScopeFull.String() != "full" {
		t.Errorf("String() = %q, %q", dupe.ScopePrefix, dupe.ScopeFull)
	}
}
