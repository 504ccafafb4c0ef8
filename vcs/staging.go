package vcs

import "github.com/pkg/errors"

// The staging area tracks pending file changes per branch.  Entries are kept
// in insertion order and carry an inclusion flag; a commit consumes exactly
// the included entries for its branch and leaves the rest staged.

// StageAdd inserts or refreshes a staging entry for the given path on the
// checked out branch.  The change kind is inferred: a path already committed
// on that branch is Modified, anything else is Added.  Deletions are staged
// with StageDelete.  Inclusion always starts out false.
func (r *Repository) StageAdd(path string) *StagingEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stage(path, r.inferKind(path))
}

// StageDelete stages the removal of a path on the checked out branch.
func (r *Repository) StageDelete(path string) *StagingEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stage(path, Deleted)
}

func (r *Repository) stage(path string, kind ChangeKind) *StagingEntry {
	for _, e := range r.Staging {
		if e.Branch == r.Head && e.Path == path {
			// Refresh the kind but keep the inclusion decision
			e.Kind = kind
			e.Added = r.now()
			cp := *e
			return &cp
		}
	}
	e := &StagingEntry{Branch: r.Head, Path: path, Kind: kind, Added: r.now()}
	r.Staging = append(r.Staging, e)
	cp := *e
	return &cp
}

// inferKind checks whether the path already appears in the history reachable
// from the branch tip.  Callers must hold the lock.
func (r *Repository) inferKind(path string) ChangeKind {
	for id := r.Branches[r.Head].Commit; id != ""; {
		c := r.commitByID(id)
		if c == nil {
			break
		}
		for _, f := range c.Files {
			if f == path {
				return Modified
			}
		}
		id = c.Parent
	}
	return Added
}

// StageList returns the staged entries for a branch in insertion order.
func (r *Repository) StageList(branch string) []StagingEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var list []StagingEntry
	for _, e := range r.Staging {
		if e.Branch == branch {
			list = append(list, *e)
		}
	}
	return list
}

// StageToggle flips the inclusion flag of a staged path on the checked out
// branch and returns the new value.
func (r *Repository) StageToggle(path string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.Staging {
		if e.Branch == r.Head && e.Path == path {
			e.Included = !e.Included
			return e.Included, nil
		}
	}
	return false, errors.Wrapf(ErrStagingEntryNotFound, "path '%s'", path)
}

// StageClear drops every staged entry for the given branch.
func (r *Repository) StageClear(branch string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.Staging[:0]
	removed := 0
	for _, e := range r.Staging {
		if e.Branch == branch {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	r.Staging = kept
	return removed
}

// consumeIncluded returns the included entries for a branch in insertion
// order and removes them from the staging area.  Unselected entries stay
// staged for a later commit.  Callers must hold the write lock.
func (r *Repository) consumeIncluded(branch string) []StagingEntry {
	var taken []StagingEntry
	kept := r.Staging[:0]
	for _, e := range r.Staging {
		if e.Branch == branch && e.Included {
			taken = append(taken, *e)
			continue
		}
		kept = append(kept, e)
	}
	r.Staging = kept
	return taken
}
