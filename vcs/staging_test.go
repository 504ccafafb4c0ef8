package vcs

import (
	"github.com/pkg/errors"
	chk "gopkg.in/check.v1"
)

type StagingSuite struct{}

var _ = chk.Suite(&StagingSuite{})

func (s *StagingSuite) TestStageAddDefaultsToNotIncluded(c *chk.C) {
	r := newTestRepo(c)
	e := r.StageAdd("test.js")
	c.Check(e.Kind, chk.Equals, Added)
	c.Check(e.Included, chk.Equals, false)
	c.Check(e.Branch, chk.Equals, "main")
}

func (s *StagingSuite) TestStageAddInfersModified(c *chk.C) {
	r := newTestRepo(c)
	stageAndCommit(c, r, "first", "a.go")

	e := r.StageAdd("a.go")
	c.Check(e.Kind, chk.Equals, Modified)
	e = r.StageAdd("b.go")
	c.Check(e.Kind, chk.Equals, Added)
}

func (s *StagingSuite) TestStageDeleteKind(c *chk.C) {
	r := newTestRepo(c)
	e := r.StageDelete("old.go")
	c.Check(e.Kind, chk.Equals, Deleted)
}

func (s *StagingSuite) TestStageAddKeepsInclusionOnRefresh(c *chk.C) {
	r := newTestRepo(c)
	r.StageAdd("a.go")
	_, err := r.StageToggle("a.go")
	c.Assert(err, chk.IsNil)

	e := r.StageAdd("a.go")
	c.Check(e.Included, chk.Equals, true)
	c.Check(r.StageList("main"), chk.HasLen, 1)
}

func (s *StagingSuite) TestStageToggleUnknownPath(c *chk.C) {
	r := newTestRepo(c)
	_, err := r.StageToggle("nope.go")
	c.Check(errors.Is(err, ErrStagingEntryNotFound), chk.Equals, true)
}

func (s *StagingSuite) TestStageListInsertionOrder(c *chk.C) {
	r := newTestRepo(c)
	r.StageAdd("b.go")
	r.StageAdd("a.go")
	r.StageAdd("c.go")

	list := r.StageList("main")
	c.Assert(list, chk.HasLen, 3)
	c.Check(list[0].Path, chk.Equals, "b.go")
	c.Check(list[1].Path, chk.Equals, "a.go")
	c.Check(list[2].Path, chk.Equals, "c.go")
}

func (s *StagingSuite) TestStagingIsPerBranch(c *chk.C) {
	r := newTestRepo(c)
	r.StageAdd("main.go")
	c.Assert(r.CreateBranch("feature"), chk.IsNil)
	c.Assert(r.Checkout("feature"), chk.IsNil)
	r.StageAdd("feature.go")

	c.Check(r.StageList("main"), chk.HasLen, 1)
	c.Check(r.StageList("feature"), chk.HasLen, 1)
	c.Check(r.StageList("feature")[0].Path, chk.Equals, "feature.go")
}

func (s *StagingSuite) TestCommitConsumesOnlyIncluded(c *chk.C) {
	r := newTestRepo(c)
	r.StageAdd("keep.go")
	r.StageAdd("ship.go")
	_, err := r.StageToggle("ship.go")
	c.Assert(err, chk.IsNil)

	id, err := r.Commit("Some Dev", "dev@example.org", "partial commit")
	c.Assert(err, chk.IsNil)

	commit, err := r.GetCommit(id)
	c.Assert(err, chk.IsNil)
	c.Check(commit.Files, chk.DeepEquals, []string{"ship.go"})

	// the unselected entry survives the commit
	left := r.StageList("main")
	c.Assert(left, chk.HasLen, 1)
	c.Check(left[0].Path, chk.Equals, "keep.go")
	c.Check(left[0].Included, chk.Equals, false)
}

func (s *StagingSuite) TestStageClear(c *chk.C) {
	r := newTestRepo(c)
	r.StageAdd("a.go")
	r.StageAdd("b.go")
	c.Check(r.StageClear("main"), chk.Equals, 2)
	c.Check(r.StageList("main"), chk.HasLen, 0)
}
