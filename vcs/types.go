package vcs

import "time"

// ChangeKind is the kind of pending change recorded for a staged path.
type ChangeKind string

const (
	Added    ChangeKind = "A"
	Modified ChangeKind = "M"
	Deleted  ChangeKind = "D"
)

// CommitKind distinguishes how a commit entered the graph.  Merges are
// recorded as regular single parent commits, the kind keeps the provenance.
type CommitKind string

const (
	RootCommit   CommitKind = "root"
	NormalCommit CommitKind = "normal"
	MergeCommit  CommitKind = "merge"
)

// PRState is the review state of a pull request.  Only open and en_revision
// are non-terminal; merged and rejected live in the closed archive.
type PRState string

const (
	PROpen       PRState = "open"
	PREnRevision PRState = "en_revision"
	PRMerged     PRState = "merged"
	PRRejected   PRState = "rejected"
)

type Branch struct {
	Name    string    `json:"name"`
	Commit  string    `json:"commit"` // tip commit ID, empty until the first commit
	Created time.Time `json:"created"`
}

type Commit struct {
	ID          string     `json:"id"`
	Kind        CommitKind `json:"kind"`
	AuthorName  string     `json:"author_name"`
	AuthorEmail string     `json:"author_email"`
	Message     string     `json:"message"`
	Timestamp   time.Time  `json:"timestamp"`
	Branch      string     `json:"branch"` // branch the commit was created on
	Parent      string     `json:"parent"` // empty for a root commit
	Files       []string   `json:"files"`
}

type StagingEntry struct {
	Branch   string     `json:"branch"`
	Path     string     `json:"path"`
	Kind     ChangeKind `json:"kind"`
	Included bool       `json:"included"`
	Added    time.Time  `json:"added"`
}

type Collaborator struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type Review struct {
	Reviewer string    `json:"reviewer"`
	Comment  string    `json:"comment"`
	At       time.Time `json:"at"`
}

type PullRequest struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Source      string    `json:"source"`
	Destination string    `json:"destination"`
	Author      string    `json:"author"`
	Created     time.Time `json:"created"`
	State       PRState   `json:"state"`
	Reviews     []Review  `json:"reviews,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	MergeCommit string    `json:"merge_commit,omitempty"` // set when the PR is approved
	Closed      time.Time `json:"closed,omitempty"`
}

// Terminal reports whether the pull request has reached a closed state.
func (pr *PullRequest) Terminal() bool {
	return pr.State == PRMerged || pr.State == PRRejected
}
