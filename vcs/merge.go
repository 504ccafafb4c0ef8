package vcs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Merge folds the file history of the source branch into the destination
// branch as one new single parent commit and advances the destination tip.
// The caller needs the merge permission.  Paths already present in the
// destination lineage are no-ops; a path present in both histories resolves
// as "source wins" since the later source version is the one recorded.
func (r *Repository) Merge(source, destination, callerName, callerEmail string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.Access.check(callerEmail, "merge") {
		return "", errors.Wrapf(ErrPermissionDenied, "'%s' needs the merge permission", callerEmail)
	}
	return r.doMerge(source, destination, callerName, callerEmail)
}

// doMerge is the permission-free merge core, shared with PR approval.
// Callers must hold the write lock and have authorised the caller.
func (r *Repository) doMerge(source, destination, callerName, callerEmail string) (string, error) {
	src, ok := r.Branches[source]
	if !ok {
		return "", errors.Wrapf(ErrBranchNotFound, "branch '%s'", source)
	}
	dst, ok := r.Branches[destination]
	if !ok {
		return "", errors.Wrapf(ErrBranchNotFound, "branch '%s'", destination)
	}
	if source == destination {
		return "", errors.Errorf("cannot merge branch '%s' into itself", source)
	}
	if src.Commit == "" {
		return "", errors.Wrapf(ErrEmptyCommit, "branch '%s' has no commits to merge", source)
	}

	files := r.lineageFiles(dst.Commit)
	seen := make(map[string]bool, len(files))
	for _, f := range files {
		seen[f] = true
	}
	for _, f := range r.lineageFiles(src.Commit) {
		if !seen[f] {
			seen[f] = true
			files = append(files, f)
		}
	}

	c := &Commit{
		Kind:        MergeCommit,
		AuthorName:  callerName,
		AuthorEmail: callerEmail,
		Message:     fmt.Sprintf("Merge branch '%s' into %s", source, destination),
		Timestamp:   r.now(),
		Branch:      destination,
		Parent:      dst.Commit,
		Files:       files,
	}
	return r.appendCommit(c), nil
}

// lineageFiles collects the unique file paths recorded across the history
// reachable from a tip, ordered oldest first.  Callers must hold the lock.
func (r *Repository) lineageFiles(tip string) []string {
	var chain []*Commit
	for id := tip; id != ""; {
		c := r.commitByID(id)
		if c == nil {
			break
		}
		chain = append(chain, c)
		id = c.Parent
	}

	var files []string
	seen := map[string]bool{}
	for i := len(chain) - 1; i >= 0; i-- {
		for _, f := range chain[i].Files {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}
	return files
}
