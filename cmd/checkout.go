package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Sets the repository HEAD to the named branch
var checkoutCmd = &cobra.Command{
	Use:   "checkout [branch name]",
	Short: "Switch the checked out branch",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("No branch name specified")
		}
		if len(args) > 1 {
			return errors.New("Only one branch can be checked out at a time")
		}

		r, err := loadRepository()
		if err != nil {
			return err
		}
		if err = r.Checkout(args[0]); err != nil {
			return err
		}
		if err = saveRepository(r); err != nil {
			return err
		}
		fmt.Fprintf(fOut, "Switched to branch '%s'\n", args[0])
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkoutCmd)
}
