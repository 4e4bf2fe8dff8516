package dupe

// DeletionFailure records a path that could not be removed.
type DeletionFailure struct {
	Entry FileEntry
	Err   error
}

// DeletionResult describes what Execute did.
type DeletionResult struct {
	Confirmed bool
	DryRun    bool
	Removed   []FileEntry
	Failed    []DeletionFailure
}

// BytesFreed returns the combined size of the removed files.
func (r *DeletionResult) BytesFreed() int64 {
	var total int64
	for _, e := range r.Removed {
		total += e.Size
	}
	return total
}

// Execute asks once for confirmation and then removes every listed file.
// Removal is best effort: a failure is recorded and the remaining paths are
// still attempted. Declining leaves the filesystem untouched. In dry-run mode
// the confirmation is still asked but nothing is removed.
func (s *DupeService) Execute(list []FileEntry) (*DeletionResult, error) {
	result := &DeletionResult{DryRun: s.dryRun}
	if len(list) == 0 {
		s.prompter.Say("No files selected for deletion.")
		return result, nil
	}

	confirmed, err := AskYesNo(s.prompter, "do you really wish to delete the files you selected.", s.promptOpts.ConfirmDefault)
	if err != nil {
		return result, err
	}
	if !confirmed {
		s.logger.Info("deletion declined", "files", len(list))
		return result, nil
	}
	result.Confirmed = true

	for _, entry := range list {
		if s.dryRun {
			s.logger.Info("would remove file", "path", entry.Path, "size", entry.Size)
			result.Removed = append(result.Removed, entry)
			continue
		}

		if err := s.fsmgr.Remove(entry.Path); err != nil {
			s.logger.Warn("failed to remove file", "path", entry.Path, "error", err)
			result.Failed = append(result.Failed, DeletionFailure{Entry: entry, Err: err})
			continue
		}
		s.logger.Info("file removed", "path", entry.Path, "size", entry.Size)
		result.Removed = append(result.Removed, entry)
	}

	return result, nil
}
