package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Creates a branch in the active repository
var branchCreateCmd = &cobra.Command{
	Use:   "create [branch name]",
	Short: "Creates a branch",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("No branch name specified")
		}
		if len(args) > 1 {
			return errors.New("Only one branch can be created at a time")
		}

		r, err := loadRepository()
		if err != nil {
			return err
		}
		if err = r.CreateBranch(args[0]); err != nil {
			return err
		}
		if err = saveRepository(r); err != nil {
			return err
		}
		fmt.Fprintf(fOut, "Branch '%s' created\n", args[0])
		return nil
	},
}

func init() {
	branchCmd.AddCommand(branchCreateCmd)
}
