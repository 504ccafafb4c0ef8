package vcs

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// DefaultBranch is the branch every new repository starts with.
const DefaultBranch = "main"

// Repository is the aggregate owning the branch store, commit graph, staging
// area, pull request queue and access control registry.  All mutating
// operations take the write lock for their whole duration; read-only
// operations share the read lock, so the repository is linearizable at this
// granularity.  Nothing here touches the filesystem: persistence is the
// caller's concern, via ToJSON/FromJSON.
type Repository struct {
	mu sync.RWMutex

	Name          string             `json:"name"`
	Head          string             `json:"head"` // name of the checked out branch
	Branches      map[string]*Branch `json:"branches"`
	Commits       []*Commit          `json:"commits"` // insertion order, append-only
	Staging       []*StagingEntry    `json:"staging"` // insertion order
	Collaborators []*Collaborator    `json:"collaborators"`
	Access        *AccessControl     `json:"access"`
	PRQueue       []*PullRequest     `json:"pr_queue"`  // active, FIFO
	PRClosed      []*PullRequest     `json:"pr_closed"` // archive, closure order
	PRCount       int                `json:"pr_count"`  // IDs are never reused

	commitIdx map[string]*Commit
	now       func() time.Time
}

// New creates an empty repository with the default branch checked out.
func New(name string) *Repository {
	r := &Repository{
		Name:      name,
		Head:      DefaultBranch,
		Branches:  map[string]*Branch{},
		Access:    newAccessControl(),
		commitIdx: map[string]*Commit{},
		now:       time.Now,
	}
	r.Branches[DefaultBranch] = &Branch{Name: DefaultBranch, Created: r.now()}
	return r
}

// ToJSON serialises the repository state.  The caller decides where (and
// whether) the snapshot is stored.
func (r *Repository) ToJSON() ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	j, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "serialising repository")
	}
	return j, nil
}

// FromJSON restores a repository previously serialised with ToJSON.
func FromJSON(data []byte) (*Repository, error) {
	r := &Repository{}
	if err := json.Unmarshal(data, r); err != nil {
		return nil, errors.Wrap(err, "deserialising repository")
	}
	r.now = time.Now
	if r.Branches == nil {
		r.Branches = map[string]*Branch{}
	}
	if r.Access == nil {
		r.Access = newAccessControl()
	}
	if _, ok := r.Branches[r.Head]; !ok {
		// A snapshot with a dangling HEAD is repaired rather than rejected
		r.Head = DefaultBranch
		if _, ok := r.Branches[DefaultBranch]; !ok {
			r.Branches[DefaultBranch] = &Branch{Name: DefaultBranch, Created: r.now()}
		}
	}
	r.commitIdx = make(map[string]*Commit, len(r.Commits))
	for _, c := range r.Commits {
		r.commitIdx[c.ID] = c
	}
	return r, nil
}

// commitByID looks up a commit.  Callers must hold the lock.
func (r *Repository) commitByID(id string) *Commit {
	if id == "" {
		return nil
	}
	return r.commitIdx[id]
}

// appendCommit links a commit into the graph and advances the branch tip.
// Callers must hold the write lock and have filled in every field but ID.
func (r *Repository) appendCommit(c *Commit) string {
	c.ID = createCommitID(c)
	r.Commits = append(r.Commits, c)
	r.commitIdx[c.ID] = c
	r.Branches[c.Branch].Commit = c.ID
	return c.ID
}
