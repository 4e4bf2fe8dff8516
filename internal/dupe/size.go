package dupe

// GroupBySize walks every root and buckets its non-empty regular files by size.
// Roots that cannot be walked and entries that cannot be inspected are logged
// and skipped; neither aborts the traversal. A file reached through more than
// one root (repeated or nested roots) is counted once.
func (s *DupeService) GroupBySize(roots []*Path) *SizeGroups {
	groups := NewSizeGroups()
	seen := make(map[string]struct{})

	skip := func(path string, err error) {
		s.logger.Warn("skipping unreadable entry", "path", path, "error", err)
	}

	for _, root := range roots {
		files, err := s.fsmgr.FindFiles(root, skip)
		if err != nil {
			s.logger.Error("cannot walk root", "path", root.String(), "error", err)
			continue
		}

		for _, f := range files {
			size := f.Info().Size()
			// Empty files are never considered duplicates.
			if size == 0 {
				continue
			}
			if _, ok := seen[f.String()]; ok {
				s.logger.Debug("file already scanned", "path", f.String(), "root", root.String())
				continue
			}
			seen[f.String()] = struct{}{}
			groups.Add(FileEntry{Path: f.String(), Size: size})
		}

		s.logger.Debug("root scanned", "path", root.String(), "files", len(files))
	}

	return groups
}
