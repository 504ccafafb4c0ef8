package vcs

import (
	"github.com/pkg/errors"
	chk "gopkg.in/check.v1"
)

type BranchSuite struct{}

var _ = chk.Suite(&BranchSuite{})

func (s *BranchSuite) TestNewRepositoryHasDefaultBranch(c *chk.C) {
	r := New("proyect")
	c.Check(r.CurrentBranch(), chk.Equals, "main")
	branches := r.ListBranches()
	c.Assert(branches, chk.HasLen, 1)
	c.Check(branches[0].Name, chk.Equals, "main")
	c.Check(branches[0].Commit, chk.Equals, "")
}

func (s *BranchSuite) TestCreateBranchStartsEmpty(c *chk.C) {
	r := newTestRepo(c)
	stageAndCommit(c, r, "seed", "a.go")

	c.Assert(r.CreateBranch("feature"), chk.IsNil)
	tip, err := r.Tip("feature")
	c.Assert(err, chk.IsNil)
	c.Check(tip, chk.Equals, "")
}

func (s *BranchSuite) TestCreateDuplicateBranch(c *chk.C) {
	r := newTestRepo(c)
	c.Assert(r.CreateBranch("feature"), chk.IsNil)
	err := r.CreateBranch("feature")
	c.Check(errors.Is(err, ErrDuplicateBranch), chk.Equals, true)
}

func (s *BranchSuite) TestDeleteBranch(c *chk.C) {
	r := newTestRepo(c)
	c.Assert(r.CreateBranch("feature"), chk.IsNil)
	c.Assert(r.DeleteBranch("feature"), chk.IsNil)

	err := r.DeleteBranch("feature")
	c.Check(errors.Is(err, ErrBranchNotFound), chk.Equals, true)
}

func (s *BranchSuite) TestDeleteCheckedOutBranch(c *chk.C) {
	r := newTestRepo(c)
	c.Assert(r.CreateBranch("feature"), chk.IsNil)
	c.Assert(r.Checkout("feature"), chk.IsNil)

	err := r.DeleteBranch("feature")
	c.Check(errors.Is(err, ErrActiveBranch), chk.Equals, true)

	// main isn't checked out any more, so it may be deleted
	c.Check(r.DeleteBranch("main"), chk.IsNil)
}

func (s *BranchSuite) TestCheckoutUnknownBranch(c *chk.C) {
	r := newTestRepo(c)
	err := r.Checkout("no-existo")
	c.Check(errors.Is(err, ErrBranchNotFound), chk.Equals, true)
	c.Check(err.Error(), chk.Matches, ".*no-existo.*")
	c.Check(r.CurrentBranch(), chk.Equals, "main")
}

func (s *BranchSuite) TestListBranchesSorted(c *chk.C) {
	r := newTestRepo(c)
	c.Assert(r.CreateBranch("zeta"), chk.IsNil)
	c.Assert(r.CreateBranch("alpha"), chk.IsNil)

	branches := r.ListBranches()
	c.Assert(branches, chk.HasLen, 3)
	c.Check(branches[0].Name, chk.Equals, "alpha")
	c.Check(branches[1].Name, chk.Equals, "main")
	c.Check(branches[2].Name, chk.Equals, "zeta")
}
