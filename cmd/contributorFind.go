package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vcsim/vcsim/vcs"
)

// Looks a collaborator up by exact name
var contributorFindCmd = &cobra.Command{
	Use:   "find [name]",
	Short: "Finds a contributor (case sensitive exact match)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("No contributor name specified")
		}

		r, err := loadRepository()
		if err != nil {
			return err
		}
		found, err := r.FindContributor(args[0])
		if errors.Is(err, vcs.ErrCollaboratorNotFound) {
			// A miss is a normal outcome, not a command failure
			fmt.Fprintf(fOut, "Contributor '%s' not found\n", args[0])
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(fOut, "Found: name='%s', role='%s'\n", found.Name, found.Role)
		return nil
	},
}

func init() {
	contributorCmd.AddCommand(contributorFindCmd)
}
