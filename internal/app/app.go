package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"dupe/internal/config"
	"dupe/internal/dupe"
	"dupe/internal/fs"
	"dupe/internal/hashing"
	"dupe/internal/prompt"
)

// Options are the per-invocation settings that do not live in the config file.
type Options struct {
	DryRun  bool
	Verbose bool

	// Prompter defaults to a console on stdin/stdout.
	Prompter dupe.Prompter
	// Console receives warnings (and debug logs when Verbose); defaults to stderr.
	Console io.Writer
}

// DupeApp is the application layer between the CLI and DupeService.
// It constructs all dependencies from config, exposes high-level operations
// that accept raw string paths, and owns the log file until Close.
type DupeApp struct {
	cfg     *config.Config
	fsmgr   dupe.FilesystemManager
	logger  dupe.Logger
	service *dupe.DupeService
	runID   string
	logFile *os.File
}

// NewDupeApp creates a fully wired DupeApp from the given config.
// The caller must call Close when done.
func NewDupeApp(cfg *config.Config, opts Options) (*DupeApp, error) {
	newHash, err := hashing.New(cfg.Hash.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("configuring hash: %w", err)
	}

	bulkDefault, err := dupe.ParseDefault(cfg.Prompt.BulkDefault)
	if err != nil {
		return nil, fmt.Errorf("configuring bulk_default: %w", err)
	}
	confirmDefault, err := dupe.ParseDefault(cfg.Prompt.ConfirmDefault)
	if err != nil {
		return nil, fmt.Errorf("configuring confirm_default: %w", err)
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	consoleLevel := slog.LevelWarn
	if opts.Verbose {
		consoleLevel = slog.LevelDebug
	}

	runID := uuid.New().String()
	l, logFile, err := newLogger(cfg.LogDir, runID, console, consoleLevel)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	logger := &slogAdapter{l: l}

	p := opts.Prompter
	if p == nil {
		p = prompt.NewStdConsole()
	}

	fsmgr := fs.NewOSFilesystemManager(cfg.Filesystem.Ignore)

	svc, err := dupe.NewDupeService(fsmgr, p, logger,
		dupe.HashOptions{
			Algorithm:  cfg.Hash.Algorithm,
			New:        newHash,
			PrefixSize: cfg.Hash.PrefixSize,
			ChunkSize:  cfg.Hash.ChunkSize,
		},
		dupe.WithPromptOptions(dupe.PromptOptions{
			BulkDefault:    bulkDefault,
			ConfirmDefault: confirmDefault,
		}),
		dupe.WithDryRun(opts.DryRun),
	)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("creating service: %w", err)
	}

	return &DupeApp{
		cfg:     cfg,
		fsmgr:   fsmgr,
		logger:  logger,
		service: svc,
		runID:   runID,
		logFile: logFile,
	}, nil
}

// RunID returns the identifier stamped on every log line of this run.
func (a *DupeApp) RunID() string {
	return a.runID
}

// Scan resolves the given roots and runs the full pipeline on them.
// A root that cannot be resolved is logged and contributes no files; a root
// given twice is scanned once.
func (a *DupeApp) Scan(rawPaths []string) (*dupe.Report, error) {
	a.logger.Info("scan started", "roots", len(rawPaths), "algorithm", a.cfg.Hash.Algorithm)

	roots := make([]*dupe.Path, 0, len(rawPaths))
	seen := make(map[string]bool)
	for _, raw := range rawPaths {
		p, err := a.fsmgr.Resolve(raw)
		if err != nil {
			a.logger.Error("cannot resolve root", "path", raw, "error", err)
			continue
		}
		if seen[p.String()] {
			a.logger.Debug("duplicate root ignored", "path", raw)
			continue
		}
		seen[p.String()] = true
		roots = append(roots, p)
	}

	return a.service.Run(roots)
}

// Close releases the log file.
func (a *DupeApp) Close() error {
	if a.logFile == nil {
		return nil
	}
	if err := a.logFile.Close(); err != nil {
		return fmt.Errorf("closing log file: %w", err)
	}
	return nil
}
