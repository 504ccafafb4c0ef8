package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vcsim/vcsim/vcs"
)

// Initialises a new repository, or re-activates an existing one
var initCmd = &cobra.Command{
	Use:   "init [repository name]",
	Short: "Initialise a repository and make it the active one",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("No repository name specified")
		}
		if len(args) > 1 {
			return errors.New("Only one repository name can be given")
		}

		name := args[0]
		if _, err := os.Stat(repoFile(name)); err == nil {
			// Already on disk, just switch to it
			b, err := os.ReadFile(repoFile(name))
			if err != nil {
				return err
			}
			r, err := vcs.FromJSON(b)
			if err != nil {
				return err
			}
			if err = saveRepository(r); err != nil {
				return err
			}
			fmt.Fprintf(fOut, "Repository '%s' loaded, on branch '%s'\n", name, r.CurrentBranch())
			return nil
		}

		r := vcs.New(name)

		// The config file can pick a different starting branch
		if db, ok := viper.Get("general.defaultbranch").(string); ok && db != "" && db != vcs.DefaultBranch {
			if err := r.CreateBranch(db); err != nil {
				return err
			}
			if err := r.Checkout(db); err != nil {
				return err
			}
			if err := r.DeleteBranch(vcs.DefaultBranch); err != nil {
				return err
			}
		}

		if err := saveRepository(r); err != nil {
			return err
		}
		fmt.Fprintf(fOut, "Repository '%s' initialised, on branch '%s'\n", name, r.CurrentBranch())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(initCmd)
}
