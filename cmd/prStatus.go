package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vcsim/vcsim/vcs"
)

// Shows the full detail of one pull request, active or closed
var prStatusCmd = &cobra.Command{
	Use:   "status [id]",
	Short: "Shows the details of a pull request",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("A pull request ID is required")
		}
		id, err := prID(args[0])
		if err != nil {
			return err
		}

		r, err := loadRepository()
		if err != nil {
			return err
		}
		pr, err := r.PRGet(id)
		if err != nil {
			return err
		}

		fmt.Fprintf(fOut, "Pull request #%d: %s\n", pr.ID, pr.Title)
		fmt.Fprintf(fOut, "  State: %s\n", pr.State)
		fmt.Fprintf(fOut, "  Source: %s\n", pr.Source)
		fmt.Fprintf(fOut, "  Destination: %s\n", pr.Destination)
		fmt.Fprintf(fOut, "  Author: %s\n", pr.Author)
		fmt.Fprintf(fOut, "  Created: %v\n", pr.Created.Format(time.UnixDate))
		if len(pr.Tags) > 0 {
			fmt.Fprintf(fOut, "  Tags: %s\n", strings.Join(pr.Tags, ", "))
		}
		if pr.MergeCommit != "" {
			fmt.Fprintf(fOut, "  Merge commit: %s\n", vcs.ShortID(pr.MergeCommit))
		}
		if pr.Terminal() {
			fmt.Fprintf(fOut, "  Closed: %v\n", pr.Closed.Format(time.UnixDate))
		}
		if len(pr.Reviews) == 0 {
			fmt.Fprintln(fOut, "  No review comments")
			return nil
		}
		fmt.Fprintln(fOut, "  Review comments:")
		for _, rv := range pr.Reviews {
			fmt.Fprintf(fOut, "    [%v] %s: %s\n", rv.At.Format(time.UnixDate), rv.Reviewer, rv.Comment)
		}
		return nil
	},
}

func init() {
	prCmd.AddCommand(prStatusCmd)
}
