package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vcsim/vcsim/vcs"
)

// Registers a collaborator by name
var contributorAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Adds a contributor",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("No contributor name specified")
		}
		if len(args) > 1 {
			return errors.New("Only one contributor can be added at a time")
		}

		r, err := loadRepository()
		if err != nil {
			return err
		}
		added := r.AddContributor(args[0])
		if err = saveRepository(r); err != nil {
			return err
		}
		if added {
			fmt.Fprintf(fOut, "Contributor '%s' added (role: %s)\n", args[0], vcs.DefaultContributorRole)
		} else {
			fmt.Fprintf(fOut, "Contributor '%s' updated (role: %s)\n", args[0], vcs.DefaultContributorRole)
		}
		return nil
	},
}

func init() {
	contributorCmd.AddCommand(contributorAddCmd)
}
