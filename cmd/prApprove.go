package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vcsim/vcsim/vcs"
)

// Approves a pull request: merges it and moves it to the closed archive
var prApproveCmd = &cobra.Command{
	Use:   "approve [id]",
	Short: "Approves and merges a pull request",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("A pull request ID is required")
		}
		id, err := prID(args[0])
		if err != nil {
			return err
		}

		name, email := identity()
		if email == "" {
			return errors.New("An email address is required, set it in the config file or with --email")
		}

		r, err := loadRepository()
		if err != nil {
			return err
		}
		pr, err := r.PRApprove(id, name, email)
		if err != nil {
			return err
		}
		if err = saveRepository(r); err != nil {
			return err
		}
		fmt.Fprintf(fOut, "Pull request #%d merged into '%s'\n", pr.ID, pr.Destination)
		fmt.Fprintf(fOut, "  * Commit ID: %s\n", vcs.ShortID(pr.MergeCommit))
		return nil
	},
}

func init() {
	prCmd.AddCommand(prApproveCmd)
}
