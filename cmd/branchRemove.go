package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Removes a branch from the active repository
var branchRemoveCmd = &cobra.Command{
	Use:   "remove [branch name]",
	Short: "Removes a branch",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("No branch name specified")
		}
		if len(args) > 1 {
			return errors.New("Only one branch can be removed at a time")
		}

		r, err := loadRepository()
		if err != nil {
			return err
		}
		if err = r.DeleteBranch(args[0]); err != nil {
			return err
		}
		if err = saveRepository(r); err != nil {
			return err
		}
		fmt.Fprintf(fOut, "Branch '%s' removed\n", args[0])
		return nil
	},
}

func init() {
	branchCmd.AddCommand(branchRemoveCmd)
}
