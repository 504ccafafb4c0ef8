package vcs

import (
	"fmt"

	"github.com/pkg/errors"
)

// The pull request workflow keeps two explicit containers: the active queue
// (FIFO by creation) and the closed archive (ordered by closure time).
// Terminal pull requests move from the former to the latter and are
// immutable afterwards.

// PRCreate opens a pull request from source into destination and appends it
// to the tail of the active queue.  Both branches must exist; nothing is
// enqueued on failure.
func (r *Repository) PRCreate(source, destination, author string) (PullRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.Branches[source]; !ok {
		return PullRequest{}, errors.Wrapf(ErrBranchNotFound, "branch '%s'", source)
	}
	if _, ok := r.Branches[destination]; !ok {
		return PullRequest{}, errors.Wrapf(ErrBranchNotFound, "branch '%s'", destination)
	}
	if source == destination {
		return PullRequest{}, errors.Errorf("source and destination are the same branch '%s'", source)
	}

	r.PRCount++
	pr := &PullRequest{
		ID:          r.PRCount,
		Title:       fmt.Sprintf("Merge %s into %s", source, destination),
		Source:      source,
		Destination: destination,
		Author:      author,
		Created:     r.now(),
		State:       PROpen,
	}
	r.PRQueue = append(r.PRQueue, pr)
	cp := *pr
	return cp, nil
}

// queuedPR finds a pull request in the active queue.  Closed pull requests
// are immutable, so every mutating operation resolves through here.
// Callers must hold the lock.
func (r *Repository) queuedPR(id int) (int, *PullRequest) {
	for i, pr := range r.PRQueue {
		if pr.ID == id {
			return i, pr
		}
	}
	return -1, nil
}

// PRReview appends a review comment and moves an open pull request into
// en_revision.  Reviewing a pull request already en revision only appends
// the comment.
func (r *Repository) PRReview(id int, reviewer, comment string) (PullRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, pr := r.queuedPR(id)
	if pr == nil {
		return PullRequest{}, errors.Wrapf(ErrPRNotFound, "pull request #%d", id)
	}
	if pr.State == PROpen {
		pr.State = PREnRevision
	}
	pr.Reviews = append(pr.Reviews, Review{Reviewer: reviewer, Comment: comment, At: r.now()})
	return *pr, nil
}

// PRTag appends a label to a pull request.  Labels are an ordered sequence
// and duplicates are allowed.
func (r *Repository) PRTag(id int, label string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, pr := r.queuedPR(id)
	if pr == nil {
		return errors.Wrapf(ErrPRNotFound, "pull request #%d", id)
	}
	pr.Tags = append(pr.Tags, label)
	return nil
}

// PRApprove merges the pull request and archives it as merged.  The approver
// needs the merge permission; the check runs before anything mutates, and a
// failed merge leaves the pull request in the active queue untouched.
func (r *Repository) PRApprove(id int, approverName, approverEmail string) (PullRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.Access.check(approverEmail, "merge") {
		return PullRequest{}, errors.Wrapf(ErrPermissionDenied,
			"'%s' needs the merge permission to approve", approverEmail)
	}
	i, pr := r.queuedPR(id)
	if pr == nil {
		return PullRequest{}, errors.Wrapf(ErrPRNotFound, "pull request #%d", id)
	}

	commitID, err := r.doMerge(pr.Source, pr.Destination, approverName, approverEmail)
	if err != nil {
		return PullRequest{}, errors.Wrapf(err, "merging pull request #%d", id)
	}

	pr.State = PRMerged
	pr.MergeCommit = commitID
	pr.Closed = r.now()
	r.PRQueue = append(r.PRQueue[:i], r.PRQueue[i+1:]...)
	r.PRClosed = append(r.PRClosed, pr)
	return *pr, nil
}

// PRReject closes the pull request as rejected without merging.  A non-empty
// reason is recorded as a review comment.
func (r *Repository) PRReject(id int, rejecter, reason string) (PullRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, pr := r.queuedPR(id)
	if pr == nil {
		return PullRequest{}, errors.Wrapf(ErrPRNotFound, "pull request #%d", id)
	}
	if reason != "" {
		pr.Reviews = append(pr.Reviews, Review{
			Reviewer: rejecter,
			Comment:  fmt.Sprintf("rejected: %s", reason),
			At:       r.now(),
		})
	}
	pr.State = PRRejected
	pr.Closed = r.now()
	r.PRQueue = append(r.PRQueue[:i], r.PRQueue[i+1:]...)
	r.PRClosed = append(r.PRClosed, pr)
	return *pr, nil
}

// PRNext pops the head of the active queue, FIFO, leaving the pull request's
// own state untouched.  An empty queue is a normal outcome reported as
// ErrQueueEmpty.
func (r *Repository) PRNext() (PullRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.PRQueue) == 0 {
		return PullRequest{}, ErrQueueEmpty
	}
	pr := r.PRQueue[0]
	r.PRQueue = r.PRQueue[1:]
	return *pr, nil
}

// PRClear empties the active queue.  The closed archive is untouched.
func (r *Repository) PRClear() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.PRQueue)
	r.PRQueue = nil
	return n
}

// PRGet looks a pull request up by ID across both the active queue and the
// closed archive.  Read-only; backs the status view.
func (r *Repository) PRGet(id int) (PullRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, pr := range r.PRQueue {
		if pr.ID == id {
			return *pr, nil
		}
	}
	for _, pr := range r.PRClosed {
		if pr.ID == id {
			return *pr, nil
		}
	}
	return PullRequest{}, errors.Wrapf(ErrPRNotFound, "pull request #%d", id)
}

// PRList returns the active queue in FIFO order followed by the closed
// archive in closure order.
func (r *Repository) PRList() (active, closed []PullRequest) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, pr := range r.PRQueue {
		active = append(active, *pr)
	}
	for _, pr := range r.PRClosed {
		closed = append(closed, *pr)
	}
	return active, closed
}
