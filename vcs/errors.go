package vcs

import "github.com/pkg/errors"

// Every failure crosses the package boundary as one of these sentinels,
// usually wrapped with errors.Wrapf for context.  Callers match with
// errors.Is.  ErrQueueEmpty is informational rather than a fault.
var (
	ErrDuplicateBranch      = errors.New("branch already exists")
	ErrBranchNotFound       = errors.New("branch not found")
	ErrActiveBranch         = errors.New("branch is currently checked out")
	ErrEmptyCommit          = errors.New("nothing to commit")
	ErrPRNotFound           = errors.New("pull request not found")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrCollaboratorNotFound = errors.New("collaborator not found")
	ErrStagingEntryNotFound = errors.New("path not found in staging area")
	ErrQueueEmpty           = errors.New("pull request queue is empty")
	ErrUnknownRole          = errors.New("unknown role")
	ErrInvalidPermission    = errors.New("permission not allowed for role")
)
