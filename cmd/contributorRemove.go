package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Removes a collaborator by name
var contributorRemoveCmd = &cobra.Command{
	Use:   "remove [name]",
	Short: "Removes a contributor",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("No contributor name specified")
		}
		if len(args) > 1 {
			return errors.New("Only one contributor can be removed at a time")
		}

		r, err := loadRepository()
		if err != nil {
			return err
		}
		if err = r.RemoveContributor(args[0]); err != nil {
			return err
		}
		if err = saveRepository(r); err != nil {
			return err
		}
		fmt.Fprintf(fOut, "Contributor '%s' removed\n", args[0])
		return nil
	},
}

func init() {
	contributorCmd.AddCommand(contributorRemoveCmd)
}
