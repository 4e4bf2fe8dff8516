package dupe

import (
	"fmt"
	"time"
)

// DupeService is the orchestration layer that runs the duplicate-detection
// pipeline and the interactive resolution on behalf of the CLI.
type DupeService struct {
	fsmgr      FilesystemManager
	prompter   Prompter
	logger     Logger
	clock      Clock
	hashOpts   HashOptions
	promptOpts PromptOptions
	dryRun     bool
}

// ServiceOption customizes a DupeService.
type ServiceOption func(*DupeService)

// WithPromptOptions sets the defaults used for empty yes/no answers.
func WithPromptOptions(opts PromptOptions) ServiceOption {
	return func(s *DupeService) { s.promptOpts = opts }
}

// WithDryRun makes Execute report removals without performing them.
func WithDryRun(dryRun bool) ServiceOption {
	return func(s *DupeService) { s.dryRun = dryRun }
}

// WithClock replaces the real clock used for run reports.
func WithClock(clock Clock) ServiceOption {
	return func(s *DupeService) { s.clock = clock }
}

// NewDupeService creates a new DupeService with the provided dependencies.
func NewDupeService(fsmgr FilesystemManager, prompter Prompter, logger Logger, hashOpts HashOptions, opts ...ServiceOption) (*DupeService, error) {
	if err := hashOpts.Validate(); err != nil {
		return nil, err
	}

	s := &DupeService{
		fsmgr:      fsmgr,
		prompter:   prompter,
		logger:     logger,
		clock:      RealClock{},
		hashOpts:   hashOpts,
		promptOpts: DefaultPromptOptions(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if _, err := s.promptOpts.BulkDefault.suffix(); err != nil {
		return nil, fmt.Errorf("bulk prompt: %w", err)
	}
	if _, err := s.promptOpts.ConfirmDefault.suffix(); err != nil {
		return nil, fmt.Errorf("confirm prompt: %w", err)
	}

	return s, nil
}

// Report summarizes one run.
type Report struct {
	StartedAt       time.Time
	FinishedAt      time.Time
	FilesScanned    int
	SizeGroups      int
	CandidateGroups int // prefix-hash groups with more than one member
	DuplicateGroups int // full-hash groups with more than one member
	Reclaimable     int64
	Selected        []FileEntry
	Deletion        *DeletionResult
}

// Run scans roots, resolves duplicates interactively and executes the
// confirmed deletions. If resolution is interrupted no file is removed.
func (s *DupeService) Run(roots []*Path) (*Report, error) {
	report := &Report{StartedAt: s.clock.Now()}
	defer func() { report.FinishedAt = s.clock.Now() }()

	bySize := s.GroupBySize(roots)
	report.FilesScanned = bySize.Count()
	report.SizeGroups = bySize.Len()

	byPrefix := s.GroupByHash(bySize, ScopePrefix)
	report.CandidateGroups = len(byPrefix.Duplicates())

	byContent := s.GroupByHash(byPrefix, ScopeFull)
	report.DuplicateGroups = len(byContent.Duplicates())
	report.Reclaimable = byContent.Reclaimable()

	s.logger.Info("scan complete",
		"files", report.FilesScanned,
		"duplicate_groups", report.DuplicateGroups,
		"reclaimable", report.Reclaimable,
	)

	selected, err := s.Resolve(byContent)
	report.Selected = selected
	if err != nil {
		return report, fmt.Errorf("resolving duplicates: %w", err)
	}

	result, err := s.Execute(selected)
	report.Deletion = result
	if err != nil {
		return report, fmt.Errorf("deleting files: %w", err)
	}

	return report, nil
}
