package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vcsim/vcsim/vcs"
)

// Merges one branch into another as a single new commit
var mergeCmd = &cobra.Command{
	Use:   "merge [source branch] [destination branch]",
	Short: "Merges the file history of one branch into another",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return errors.New("Source and destination branch names are required")
		}

		name, email := identity()
		if email == "" {
			return errors.New("An email address is required, set it in the config file or with --email")
		}

		r, err := loadRepository()
		if err != nil {
			return err
		}
		id, err := r.Merge(args[0], args[1], name, email)
		if err != nil {
			return err
		}
		if err = saveRepository(r); err != nil {
			return err
		}
		fmt.Fprintf(fOut, "Merged '%s' into '%s'\n", args[0], args[1])
		fmt.Fprintf(fOut, "  * Commit ID: %s\n", vcs.ShortID(id))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(mergeCmd)
}
