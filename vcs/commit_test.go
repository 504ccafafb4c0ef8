package vcs

import (
	"time"

	"github.com/pkg/errors"
	chk "gopkg.in/check.v1"
)

type CommitSuite struct{}

var _ = chk.Suite(&CommitSuite{})

func (s *CommitSuite) TestCommitAdvancesTip(c *chk.C) {
	r := newTestRepo(c)
	id := stageAndCommit(c, r, "first", "a.go")

	tip, err := r.Tip("main")
	c.Assert(err, chk.IsNil)
	c.Check(tip, chk.Equals, id)

	commit, err := r.GetCommit(id)
	c.Assert(err, chk.IsNil)
	c.Check(commit.Kind, chk.Equals, RootCommit)
	c.Check(commit.Parent, chk.Equals, "")

	id2 := stageAndCommit(c, r, "second", "b.go")
	commit2, err := r.GetCommit(id2)
	c.Assert(err, chk.IsNil)
	c.Check(commit2.Kind, chk.Equals, NormalCommit)
	c.Check(commit2.Parent, chk.Equals, id)
}

func (s *CommitSuite) TestCommitRequiresPushPermission(c *chk.C) {
	r := newTestRepo(c)
	r.StageAdd("a.go")
	_, err := r.StageToggle("a.go")
	c.Assert(err, chk.IsNil)

	_, err = r.Commit("Guest", "guest@example.org", "drive-by")
	c.Check(errors.Is(err, ErrPermissionDenied), chk.Equals, true)

	// permission denial never consumes the staging area
	c.Check(r.StageList("main"), chk.HasLen, 1)
}

func (s *CommitSuite) TestEmptyCommit(c *chk.C) {
	r := newTestRepo(c)
	r.StageAdd("a.go") // staged but never toggled in
	_, err := r.Commit("Some Dev", "dev@example.org", "nothing selected")
	c.Check(errors.Is(err, ErrEmptyCommit), chk.Equals, true)
	c.Check(r.StageList("main"), chk.HasLen, 1)
}

func (s *CommitSuite) TestCommitIDDeterministic(c *chk.C) {
	ts := time.Date(2024, time.March, 15, 18, 1, 0, 0, time.UTC)
	a := &Commit{
		AuthorName:  "Some Dev",
		AuthorEmail: "dev@example.org",
		Message:     "test prueba",
		Timestamp:   ts,
		Parent:      "",
		Files:       []string{"test.js"},
	}
	b := &Commit{
		AuthorName:  "Some Dev",
		AuthorEmail: "dev@example.org",
		Message:     "test prueba",
		Timestamp:   ts,
		Parent:      "",
		Files:       []string{"test.js"},
	}
	c.Check(createCommitID(a), chk.Equals, createCommitID(b))

	b.Files = []string{"other.js"}
	c.Check(createCommitID(a), chk.Not(chk.Equals), createCommitID(b))
}

func (s *CommitSuite) TestLogNewestFirst(c *chk.C) {
	r := newTestRepo(c)
	first := stageAndCommit(c, r, "first", "a.go")
	second := stageAndCommit(c, r, "second", "b.go")

	it, err := r.Log("main")
	c.Assert(err, chk.IsNil)

	commit, ok := it.Next()
	c.Assert(ok, chk.Equals, true)
	c.Check(commit.ID, chk.Equals, second)
	commit, ok = it.Next()
	c.Assert(ok, chk.Equals, true)
	c.Check(commit.ID, chk.Equals, first)
	_, ok = it.Next()
	c.Check(ok, chk.Equals, false)

	// the walk is restartable
	it.Reset()
	commit, ok = it.Next()
	c.Assert(ok, chk.Equals, true)
	c.Check(commit.ID, chk.Equals, second)
}

func (s *CommitSuite) TestLogUnknownBranch(c *chk.C) {
	r := newTestRepo(c)
	_, err := r.Log("no-existo")
	c.Check(errors.Is(err, ErrBranchNotFound), chk.Equals, true)
}

func (s *CommitSuite) TestLogAllBranches(c *chk.C) {
	r := newTestRepo(c)
	onMain := stageAndCommit(c, r, "on main", "a.go")
	c.Assert(r.CreateBranch("feature"), chk.IsNil)
	c.Assert(r.Checkout("feature"), chk.IsNil)
	onFeature := stageAndCommit(c, r, "on feature", "b.go")

	it, err := r.Log("")
	c.Assert(err, chk.IsNil)

	commit, ok := it.Next()
	c.Assert(ok, chk.Equals, true)
	c.Check(commit.ID, chk.Equals, onFeature)
	commit, ok = it.Next()
	c.Assert(ok, chk.Equals, true)
	c.Check(commit.ID, chk.Equals, onMain)
	_, ok = it.Next()
	c.Check(ok, chk.Equals, false)
}

// The full scenario from the command transcript: new branch, stage, toggle,
// commit.
func (s *CommitSuite) TestBranchCommitScenario(c *chk.C) {
	r := New("proyect")
	r.now = fakeClock()
	c.Assert(r.GrantRole("user@example.org", "developer", []string{"push"}), chk.IsNil)

	c.Assert(r.CreateBranch("nuevaRama"), chk.IsNil)
	c.Assert(r.Checkout("nuevaRama"), chk.IsNil)
	r.StageAdd("test.js")
	_, err := r.StageToggle("test.js")
	c.Assert(err, chk.IsNil)

	id, err := r.Commit("User", "user@example.org", "test prueba")
	c.Assert(err, chk.IsNil)
	c.Check(ShortID(id), chk.Matches, "[0-9a-f]{10}")

	tip, err := r.Tip("nuevaRama")
	c.Assert(err, chk.IsNil)
	c.Check(tip, chk.Equals, id)
	c.Check(r.StageList("nuevaRama"), chk.HasLen, 0)
}
