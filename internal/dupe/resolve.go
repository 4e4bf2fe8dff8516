package dupe

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// resolveState is the per-group position of the resolution loop.
type resolveState int

const (
	awaitingSelection resolveState = iota
	bulkCheck
	done
)

// resolver holds the mutable state of one Resolve call.
type resolver struct {
	prompter  Prompter
	logger    Logger
	opts      PromptOptions
	groups    *HashGroups
	deletions []FileEntry

	// listed is false whenever the current group must be shown again.
	listed bool
}

// Resolve asks the operator, group by group, which duplicates to delete.
// It returns the deletion candidates in selection order. Groups are mutated in
// place: selected members are removed from them. Resolve never touches the
// filesystem.
//
// If the prompter fails, Resolve stops and returns the candidates gathered so
// far together with the error.
func (s *DupeService) Resolve(groups *HashGroups) ([]FileEntry, error) {
	r := &resolver{
		prompter: s.prompter,
		logger:   s.logger,
		opts:     s.promptOpts,
		groups:   groups,
	}

	for _, group := range groups.Groups() {
		if err := r.resolveGroup(group); err != nil {
			return r.deletions, err
		}
	}

	return r.deletions, nil
}

func (r *resolver) resolveGroup(g *HashGroup) error {
	r.listed = false
	state := awaitingSelection
	target := -1

	for state != done {
		var err error
		switch state {
		case awaitingSelection:
			state, target, err = r.awaitSelection(g)
		case bulkCheck:
			state, err = r.bulkCheck(g, target)
		default:
			return fmt.Errorf("unexpected resolver state %d", state)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// awaitSelection handles one answer to the selection prompt.
// It returns the next state and, for bulkCheck, the selected index.
func (r *resolver) awaitSelection(g *HashGroup) (resolveState, int, error) {
	if g.Len() < 2 {
		return done, -1, nil
	}

	if !r.listed {
		r.list(g)
	}

	answer, err := r.prompter.Ask(fmt.Sprintf(
		"Enter a number to add that file to the delete list: 1 to %d or 0 to select none.", g.Len()))
	if err != nil {
		return done, -1, fmt.Errorf("reading selection: %w", err)
	}

	// On overflow Atoi returns the clamped value, which the range checks below handle.
	selection, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		r.prompter.Say("Not an integer value...")
		return awaitingSelection, -1, nil
	}
	if selection > g.Len() {
		r.prompter.Say("Selection does not exist. Please try again.")
		return awaitingSelection, -1, nil
	}
	if selection <= 0 {
		r.prompter.Say("Don't delete any of these duplicates.")
		r.logger.Debug("group kept", "digest", g.Digest.String(), "files", g.Len())
		return done, -1, nil
	}

	idx := selection - 1
	if g.Len() == 2 {
		return bulkCheck, idx, nil
	}

	r.deleteOne(g, idx)
	return awaitingSelection, -1, nil
}

// bulkCheck offers to extend the selection of a two-member group to every
// group pairing the target's directory with the other member's directory.
func (r *resolver) bulkCheck(g *HashGroup, idx int) (resolveState, error) {
	target := g.Files[idx]
	other := g.Files[1-idx]
	dirDel, dirKeep := target.Dir(), other.Dir()

	if dirDel == dirKeep {
		r.prompter.Say("File %s and file %s are in the same directory", target.Path, other.Path)
		r.deleteOne(g, idx)
		return awaitingSelection, nil
	}

	question := fmt.Sprintf("Would you like to delete all file found in %q that are also found in %q?", dirDel, dirKeep)
	accepted, err := AskYesNo(r.prompter, question, r.opts.BulkDefault)
	if err != nil {
		return done, err
	}
	if !accepted {
		r.deleteOne(g, idx)
		return awaitingSelection, nil
	}

	matched := r.bulkDelete(dirDel, dirKeep)
	r.logger.Info("bulk selection", "delete_dir", dirDel, "keep_dir", dirKeep, "files", len(matched))
	r.listed = false
	return awaitingSelection, nil
}

// bulkDelete scans every group for a member in dirDel with a counterpart in
// dirKeep, and moves the first such dirDel member of each group to the
// deletion list.
func (r *resolver) bulkDelete(dirDel, dirKeep string) []FileEntry {
	var matched []FileEntry
	for _, group := range r.groups.Groups() {
		idxDel := group.indexInDir(dirDel)
		idxKeep := group.indexInDir(dirKeep)
		if idxDel < 0 || idxKeep < 0 {
			continue
		}
		entry := group.remove(idxDel)
		r.prompter.Say("Ok file %q is being add to the delete list.", entry.Path)
		matched = append(matched, entry)
	}
	r.deletions = append(r.deletions, matched...)
	return matched
}

func (r *resolver) deleteOne(g *HashGroup, idx int) {
	entry := g.remove(idx)
	r.prompter.Say("Ok file %q is being add to the delete list.", entry.Path)
	r.logger.Debug("file selected", "path", entry.Path, "digest", g.Digest.String())
	r.deletions = append(r.deletions, entry)
	r.listed = false
}

func (r *resolver) list(g *HashGroup) {
	r.prompter.Say("New Hash.")
	r.prompter.Say("%s", g.Digest.String())
	for i, f := range g.Files {
		r.prompter.Say("  %d: %s", i+1, f.Path)
	}
	r.listed = true
}
