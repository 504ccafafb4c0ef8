package cmd

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/vcsim/vcsim/vcs"
)

// Repository snapshots live under .vcsim/ in the working directory, one JSON
// file per repository plus an "active" marker naming the current one.  The
// core never touches the disk; this file is the whole persistence layer.
const stateDir = ".vcsim"

func repoFile(name string) string {
	return filepath.Join(stateDir, name+".json")
}

func activeFile() string {
	return filepath.Join(stateDir, "active")
}

// activeRepoName returns the name recorded by the last init.
func activeRepoName() (string, error) {
	b, err := os.ReadFile(activeFile())
	if err != nil {
		return "", errors.New("no active repository, run 'vcsim init <name>' first")
	}
	return string(b), nil
}

// loadRepository reads the snapshot of the active repository.
func loadRepository() (*vcs.Repository, error) {
	name, err := activeRepoName()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(repoFile(name))
	if err != nil {
		return nil, errors.Wrapf(err, "reading repository '%s'", name)
	}
	return vcs.FromJSON(b)
}

// saveRepository writes the snapshot back and records it as active.
func saveRepository(r *vcs.Repository) error {
	if _, err := os.Stat(stateDir); os.IsNotExist(err) {
		if err = os.MkdirAll(stateDir, 0770); err != nil {
			return err
		}
	}
	j, err := r.ToJSON()
	if err != nil {
		return err
	}
	if err = os.WriteFile(repoFile(r.Name), j, 0644); err != nil {
		return errors.Wrapf(err, "writing repository '%s'", r.Name)
	}
	return os.WriteFile(activeFile(), []byte(r.Name), 0644)
}

// createCommitText generates the user visible commit text for a commit.
func createCommitText(c vcs.Commit) string {
	s := numFormat.Sprintf("  commit %s\n", c.ID)
	if c.Kind == vcs.MergeCommit {
		s += numFormat.Sprintf("  Merge (single parent, kind %s)\n", c.Kind)
	}
	s += numFormat.Sprintf("  Author: %s <%s>\n", c.AuthorName, c.AuthorEmail)
	s += numFormat.Sprintf("  Branch: %s\n", c.Branch)
	s += numFormat.Sprintf("  Date: %v\n", c.Timestamp.Format(time.UnixDate))
	if c.Message != "" {
		s += numFormat.Sprintf("\n      %s\n", c.Message)
	}
	if len(c.Files) > 0 {
		s += numFormat.Sprintf("      Files (%d): ", len(c.Files))
		for i, f := range c.Files {
			if i > 0 {
				s += ", "
			}
			s += f
		}
		s += "\n"
	}
	return s
}
