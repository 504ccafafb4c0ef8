package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vcsim/vcsim/vcs"
)

var commitCmdMsg string

// Create a commit from the selected staging entries on the checked out branch
var commitCmd = &cobra.Command{
	Use:   "commit --message xxx",
	Short: "Creates a new commit from the selected staged files",
	RunE: func(cmd *cobra.Command, args []string) error {
		if commitCmdMsg == "" {
			return errors.New("No commit message given")
		}

		// Grab author name & email from the config file, the command line
		// flags override them
		name, email := identity()
		if name == "" || email == "" {
			return errors.New("Both author name and email are required, set them in the config file or with --name / --email")
		}

		r, err := loadRepository()
		if err != nil {
			return err
		}
		branch := r.CurrentBranch()
		id, err := r.Commit(name, email, commitCmdMsg)
		if err != nil {
			return err
		}
		if err = saveRepository(r); err != nil {
			return err
		}

		fmt.Fprintf(fOut, "Commit created on '%s'\n", branch)
		fmt.Fprintf(fOut, "  * Commit ID: %s\n", vcs.ShortID(id))
		fmt.Fprintf(fOut, "    Commit message: %s\n", commitCmdMsg)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(commitCmd)
	commitCmd.Flags().StringVar(&commitCmdMsg, "message", "",
		"Description / commit message")
}
