package dupe_test

import (
	"crypto/sha1"
	"testing"

	"dupe/internal/dupe"
	"dupe/internal/testutil"
)

func sha1Options() dupe.HashOptions {
	return dupe.HashOptions{Algorithm: "sha1", New: sha1.New}
}

// newTestService builds a service over mem with a discarding logger.
func newTestService(t *testing.T, mem *testutil.MemFS, p dupe.Prompter, opts ...dupe.ServiceOption) *dupe.DupeService {
	t.Helper()
	return newTestServiceWithLogger(t, mem, p, dupe.NewNopLogger(), opts...)
}

func newTestServiceWithLogger(t *testing.T, mem *testutil.MemFS, p dupe.Prompter, logger dupe.Logger, opts ...dupe.ServiceOption) *dupe.DupeService {
	t.Helper()
	svc, err := dupe.NewDupeService(mem.Manager(), p, logger, sha1Options(), opts...)
	if err != nil {
		t.Fatalf("NewDupeService() error = %v", err)
	}
	return svc
}

// resolveRoots resolves every raw path against mem, failing the test on error.
func resolveRoots(t *testing.T, mem *testutil.MemFS, raw ...string) []*dupe.Path {
	t.Helper()
	mgr := mem.Manager()
	roots := make([]*dupe.Path, 0, len(raw))
	for _, r := range raw {
		p, err := mgr.Resolve(r)
		if err != nil {
			t.Fatalf("Resolve(%q) error = %v", r, err)
		}
		roots = append(roots, p)
	}
	return roots
}

func paths(entries []dupe.FileEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Path
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func contains(lines []string, want string) bool {
	for _, l := range lines {
		if l == want {
			return true
		}
	}
	return false
}
