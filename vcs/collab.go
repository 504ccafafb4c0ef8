package vcs

import (
	"sort"

	"github.com/pkg/errors"
)

// DefaultContributorRole is the role label given to plain contributors.
const DefaultContributorRole = "Contributor"

// AddContributor registers a collaborator by name, or updates the role label
// of an existing one.  The registry is kept alphabetically sorted.  Returns
// true when a new collaborator was added.
func (r *Repository) AddContributor(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.Collaborators {
		if c.Name == name {
			c.Role = DefaultContributorRole
			return false
		}
	}
	r.Collaborators = append(r.Collaborators, &Collaborator{Name: name, Role: DefaultContributorRole})
	sort.Slice(r.Collaborators, func(i, j int) bool {
		return r.Collaborators[i].Name < r.Collaborators[j].Name
	})
	return true
}

// RemoveContributor deletes a collaborator by name.
func (r *Repository) RemoveContributor(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.Collaborators {
		if c.Name == name {
			r.Collaborators = append(r.Collaborators[:i], r.Collaborators[i+1:]...)
			return nil
		}
	}
	return errors.Wrapf(ErrCollaboratorNotFound, "'%s'", name)
}

// FindContributor performs a case-sensitive exact lookup.  Not finding the
// name is a normal outcome, surfaced as ErrCollaboratorNotFound.
func (r *Repository) FindContributor(name string) (Collaborator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.Collaborators {
		if c.Name == name {
			return *c, nil
		}
	}
	return Collaborator{}, errors.Wrapf(ErrCollaboratorNotFound, "'%s'", name)
}

// ListContributors returns all collaborators in alphabetical order.
func (r *Repository) ListContributors() []Collaborator {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]Collaborator, 0, len(r.Collaborators))
	for _, c := range r.Collaborators {
		list = append(list, *c)
	}
	return list
}
