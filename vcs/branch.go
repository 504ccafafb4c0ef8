package vcs

import (
	"sort"

	"github.com/pkg/errors"
)

// CreateBranch adds a new branch with an empty tip.  The branch only gains a
// tip with its first commit.
func (r *Repository) CreateBranch(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.Branches[name]; ok {
		return errors.Wrapf(ErrDuplicateBranch, "branch '%s'", name)
	}
	r.Branches[name] = &Branch{Name: name, Created: r.now()}
	return nil
}

// DeleteBranch removes a branch.  The checked out branch can't be deleted.
func (r *Repository) DeleteBranch(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.Branches[name]; !ok {
		return errors.Wrapf(ErrBranchNotFound, "branch '%s'", name)
	}
	if name == r.Head {
		return errors.Wrapf(ErrActiveBranch, "branch '%s'", name)
	}
	delete(r.Branches, name)
	return nil
}

// Checkout sets the repository HEAD to the named branch.
func (r *Repository) Checkout(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.Branches[name]; !ok {
		return errors.Wrapf(ErrBranchNotFound, "branch '%s'", name)
	}
	r.Head = name
	return nil
}

// CurrentBranch returns the name of the checked out branch.
func (r *Repository) CurrentBranch() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.Head
}

// ListBranches returns copies of all branches, sorted by name.
func (r *Repository) ListBranches() []Branch {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]Branch, 0, len(r.Branches))
	for _, b := range r.Branches {
		list = append(list, *b)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// Tip returns the tip commit ID of the named branch, empty when the branch
// has no commits yet.
func (r *Repository) Tip(name string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.Branches[name]
	if !ok {
		return "", errors.Wrapf(ErrBranchNotFound, "branch '%s'", name)
	}
	return b.Commit, nil
}
