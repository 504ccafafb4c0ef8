package vcs

import (
	"github.com/pkg/errors"
	chk "gopkg.in/check.v1"
)

type AccessSuite struct{}

var _ = chk.Suite(&AccessSuite{})

func (s *AccessSuite) TestCheckUnknownEmailIsFalse(c *chk.C) {
	r := New("testrepo")
	c.Check(r.CheckPermission("nobody@example.org", "push"), chk.Equals, false)
}

func (s *AccessSuite) TestGrantThenCheck(c *chk.C) {
	r := New("testrepo")
	c.Assert(r.GrantRole("dev@example.org", "developer", []string{"push"}), chk.IsNil)
	c.Check(r.CheckPermission("dev@example.org", "push"), chk.Equals, true)
	c.Check(r.CheckPermission("dev@example.org", "merge"), chk.Equals, false)
}

func (s *AccessSuite) TestGrantValidatesRoleAndPermissions(c *chk.C) {
	r := New("testrepo")
	err := r.GrantRole("x@example.org", "wizard", []string{"push"})
	c.Check(errors.Is(err, ErrUnknownRole), chk.Equals, true)

	// developers may only be granted push
	err = r.GrantRole("x@example.org", "developer", []string{"merge"})
	c.Check(errors.Is(err, ErrInvalidPermission), chk.Equals, true)
	c.Check(r.CheckPermission("x@example.org", "merge"), chk.Equals, false)
}

func (s *AccessSuite) TestEmailsAreCaseInsensitive(c *chk.C) {
	r := New("testrepo")
	c.Assert(r.GrantRole("Dev@Example.org", "developer", []string{"push"}), chk.IsNil)
	c.Check(r.CheckPermission("dev@example.org", "push"), chk.Equals, true)
}

func (s *AccessSuite) TestUpdateRoleAddsPermissions(c *chk.C) {
	r := New("testrepo")
	c.Assert(r.GrantRole("dev@example.org", "developer", []string{"push"}), chk.IsNil)
	c.Assert(r.UpdateRole("dev@example.org", "maintainer", []string{"merge"}), chk.IsNil)

	g, err := r.ShowRole("dev@example.org")
	c.Assert(err, chk.IsNil)
	c.Check(g.Role, chk.Equals, "maintainer")
	c.Check(g.Permissions, chk.DeepEquals, []string{"merge", "push"})
	c.Check(r.CheckPermission("dev@example.org", "push"), chk.Equals, true)
	c.Check(r.CheckPermission("dev@example.org", "merge"), chk.Equals, true)
}

func (s *AccessSuite) TestUpdateUnknownEmail(c *chk.C) {
	r := New("testrepo")
	err := r.UpdateRole("nobody@example.org", "developer", nil)
	c.Check(errors.Is(err, ErrCollaboratorNotFound), chk.Equals, true)
}

func (s *AccessSuite) TestRevoke(c *chk.C) {
	r := New("testrepo")
	c.Assert(r.GrantRole("dev@example.org", "developer", []string{"push"}), chk.IsNil)
	c.Assert(r.RevokeRole("dev@example.org"), chk.IsNil)
	c.Check(r.CheckPermission("dev@example.org", "push"), chk.Equals, false)

	err := r.RevokeRole("dev@example.org")
	c.Check(errors.Is(err, ErrCollaboratorNotFound), chk.Equals, true)
}

func (s *AccessSuite) TestListRolesOrderedByEmail(c *chk.C) {
	r := New("testrepo")
	c.Assert(r.GrantRole("zed@example.org", "guest", []string{"pull"}), chk.IsNil)
	c.Assert(r.GrantRole("amy@example.org", "admin", []string{"push", "merge"}), chk.IsNil)

	list := r.ListRoles()
	c.Assert(list, chk.HasLen, 2)
	c.Check(list[0].Email, chk.Equals, "amy@example.org")
	c.Check(list[1].Email, chk.Equals, "zed@example.org")
}

func (s *AccessSuite) TestGrantsSurviveSerialisation(c *chk.C) {
	r := New("testrepo")
	c.Assert(r.GrantRole("dev@example.org", "maintainer", []string{"push", "merge"}), chk.IsNil)

	j, err := r.ToJSON()
	c.Assert(err, chk.IsNil)
	restored, err := FromJSON(j)
	c.Assert(err, chk.IsNil)
	c.Check(restored.CheckPermission("dev@example.org", "merge"), chk.Equals, true)
	c.Check(restored.CheckPermission("dev@example.org", "pull"), chk.Equals, false)
}

type CollabSuite struct{}

var _ = chk.Suite(&CollabSuite{})

func (s *CollabSuite) TestAddAndListSorted(c *chk.C) {
	r := New("testrepo")
	c.Check(r.AddContributor("zoe"), chk.Equals, true)
	c.Check(r.AddContributor("ana"), chk.Equals, true)
	c.Check(r.AddContributor("zoe"), chk.Equals, false) // update, not insert

	list := r.ListContributors()
	c.Assert(list, chk.HasLen, 2)
	c.Check(list[0].Name, chk.Equals, "ana")
	c.Check(list[1].Name, chk.Equals, "zoe")
}

func (s *CollabSuite) TestFindIsCaseSensitive(c *chk.C) {
	r := New("testrepo")
	r.AddContributor("Ana")

	found, err := r.FindContributor("Ana")
	c.Assert(err, chk.IsNil)
	c.Check(found.Role, chk.Equals, "Contributor")

	_, err = r.FindContributor("ana")
	c.Check(errors.Is(err, ErrCollaboratorNotFound), chk.Equals, true)
}

func (s *CollabSuite) TestRemove(c *chk.C) {
	r := New("testrepo")
	r.AddContributor("ana")
	c.Assert(r.RemoveContributor("ana"), chk.IsNil)
	err := r.RemoveContributor("ana")
	c.Check(errors.Is(err, ErrCollaboratorNotFound), chk.Equals, true)
}
