package cmd

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vcsim/vcsim/vcs"
)

// prCmd is the parent for the pull request subcommands
var prCmd = &cobra.Command{
	Use:   "pr",
	Short: "Manage the pull request review queue",
}

func init() {
	RootCmd.AddCommand(prCmd)
}

// prID parses the pull request ID argument.
func prID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Errorf("'%s' is not a valid pull request ID", arg)
	}
	return id, nil
}

// prLine formats one pull request for the list views.
func prLine(pr vcs.PullRequest) string {
	tags := ""
	for i, t := range pr.Tags {
		if i > 0 {
			tags += ","
		}
		tags += t
	}
	return fmt.Sprintf("#%-4d %-12s %-15s -> %-15s %-25s %s",
		pr.ID, pr.State, pr.Source, pr.Destination, pr.Author, tags)
}
