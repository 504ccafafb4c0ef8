package vcs

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"time"

	"github.com/pkg/errors"
)

// createCommitID generates a stable SHA256 for a commit.  Two commits with
// identical parent, author, timestamp, message and file list hash to the
// same ID.
func createCommitID(c *Commit) string {
	var b bytes.Buffer
	for _, f := range c.Files {
		b.WriteString(fmt.Sprintf("file %s\n", f))
	}
	if c.Parent != "" {
		b.WriteString(fmt.Sprintf("parent %s\n", c.Parent))
	}
	b.WriteString(fmt.Sprintf("author %s <%s> %v\n", c.AuthorName, c.AuthorEmail,
		c.Timestamp.Format(time.UnixDate)))
	b.WriteString("\n" + c.Message)
	b.WriteByte(0)
	s := sha256.Sum256(b.Bytes())
	return hex.EncodeToString(s[:])
}

// ShortID abbreviates a commit ID for display.
func ShortID(id string) string {
	if len(id) > 10 {
		return id[:10]
	}
	return id
}

// Commit turns the included staging entries of the checked out branch into a
// new commit, advances the branch tip and returns the commit ID.  The author
// needs the push permission.  Permission and staging checks happen before
// anything mutates.
func (r *Repository) Commit(authorName, authorEmail, message string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.Access.check(authorEmail, "push") {
		return "", errors.Wrapf(ErrPermissionDenied, "'%s' needs the push permission to commit", authorEmail)
	}

	included := 0
	for _, e := range r.Staging {
		if e.Branch == r.Head && e.Included {
			included++
		}
	}
	if included == 0 {
		return "", errors.Wrapf(ErrEmptyCommit, "no files selected on branch '%s'", r.Head)
	}

	entries := r.consumeIncluded(r.Head)
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		files = append(files, e.Path)
	}

	branch := r.Branches[r.Head]
	kind := NormalCommit
	if branch.Commit == "" {
		kind = RootCommit
	}
	c := &Commit{
		Kind:        kind,
		AuthorName:  authorName,
		AuthorEmail: authorEmail,
		Message:     message,
		Timestamp:   r.now(),
		Branch:      r.Head,
		Parent:      branch.Commit,
		Files:       files,
	}
	return r.appendCommit(c), nil
}

// GetCommit returns a copy of the commit with the given ID.
func (r *Repository) GetCommit(id string) (Commit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := r.commitByID(id)
	if c == nil {
		return Commit{}, errors.Errorf("commit '%s' not found", ShortID(id))
	}
	return *c, nil
}

// LogIter walks commit history lazily, newest first.  Commits are immutable
// and append-only, so each step only needs the read lock for the lookup.
// Reset rewinds the iterator to its starting point.
type LogIter struct {
	r *Repository

	// branch walk: follow parent links from the tip
	start string
	cur   string

	// repository-wide walk: a precomputed newest-first ID order
	ids []string
	idx int
	all bool
}

// Log returns an iterator over the history of the named branch, following
// parent links from the tip.  An empty branch name yields every commit in
// the repository in reverse chronological order, ties broken by insertion
// order (later commit first).
func (r *Repository) Log(branch string) (*LogIter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if branch == "" {
		ids := make([]string, len(r.Commits))
		order := make(map[string]int, len(r.Commits))
		for i, c := range r.Commits {
			ids[i] = c.ID
			order[c.ID] = i
		}
		sort.SliceStable(ids, func(i, j int) bool {
			ci, cj := r.commitIdx[ids[i]], r.commitIdx[ids[j]]
			if !ci.Timestamp.Equal(cj.Timestamp) {
				return ci.Timestamp.After(cj.Timestamp)
			}
			return order[ci.ID] > order[cj.ID]
		})
		return &LogIter{r: r, ids: ids, all: true}, nil
	}

	b, ok := r.Branches[branch]
	if !ok {
		return nil, errors.Wrapf(ErrBranchNotFound, "branch '%s'", branch)
	}
	return &LogIter{r: r, start: b.Commit, cur: b.Commit}, nil
}

// Next returns the next commit, or false when the walk is done.  The
// sequence is finite: every commit has at most one parent and the graph is
// append-only, so parent chains can't cycle.
func (it *LogIter) Next() (Commit, bool) {
	it.r.mu.RLock()
	defer it.r.mu.RUnlock()

	if it.all {
		if it.idx >= len(it.ids) {
			return Commit{}, false
		}
		c := it.r.commitIdx[it.ids[it.idx]]
		it.idx++
		return *c, true
	}

	if it.cur == "" {
		return Commit{}, false
	}
	c := it.r.commitByID(it.cur)
	if c == nil {
		return Commit{}, false
	}
	it.cur = c.Parent
	return *c, true
}

// Reset rewinds the iterator so the history can be walked again.
func (it *LogIter) Reset() {
	it.cur = it.start
	it.idx = 0
}
