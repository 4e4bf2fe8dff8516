package dupe

import (
	"errors"
	"fmt"
	"io"
)

// GroupByHash re-partitions every bucket of in by content digest over scope.
// Buckets with fewer than two members cannot hold a duplicate and are dropped
// without opening any file. A file that cannot be read is logged and left out.
//
// The result still contains singleton groups; use HashGroups.Duplicates or feed
// the result into another pass, which drops them.
func (s *DupeService) GroupByHash(in Grouping, scope HashScope) *HashGroups {
	out := NewHashGroups()

	for _, bucket := range in.Buckets() {
		if len(bucket) < 2 {
			continue
		}

		for _, entry := range bucket {
			digest, err := s.digest(entry.Path, scope)
			if err != nil {
				s.logger.Warn("skipping unhashable file", "path", entry.Path, "scope", scope.String(), "error", err)
				continue
			}
			out.Add(digest, entry)
		}
	}

	s.logger.Debug("hash pass complete", "scope", scope.String(), "groups", out.Len(), "algorithm", s.hashOpts.Algorithm)
	return out
}

// digest opens path, hashes it over scope and closes it again.
func (s *DupeService) digest(path string, scope HashScope) (Digest, error) {
	r, err := s.fsmgr.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer r.Close()

	h := s.hashOpts.New()

	switch scope {
	case ScopePrefix:
		if _, err := io.CopyN(h, r, s.hashOpts.PrefixSize); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("reading prefix: %w", err)
		}
	case ScopeFull:
		buf := make([]byte, s.hashOpts.ChunkSize)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				h.Write(buf[:n])
			}
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return nil, fmt.Errorf("reading file: %w", err)
			}
		}
	default:
		return nil, fmt.Errorf("unknown hash scope: %s", scope)
	}

	return Digest(h.Sum(nil)), nil
}
