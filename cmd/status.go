package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vcsim/vcsim/vcs"
)

// Shows the checked out branch, its tip and the staging area
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Shows the state of the active repository",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRepository()
		if err != nil {
			return err
		}

		branch := r.CurrentBranch()
		fmt.Fprintf(fOut, "Repository: %s\n", r.Name)
		fmt.Fprintf(fOut, "On branch: %s\n", branch)
		tip, err := r.Tip(branch)
		if err != nil {
			return err
		}
		if tip == "" {
			fmt.Fprintln(fOut, "No commits yet")
		} else {
			fmt.Fprintf(fOut, "Last commit: %s\n", vcs.ShortID(tip))
		}

		entries := r.StageList(branch)
		if len(entries) == 0 {
			fmt.Fprintln(fOut, "\nStaging area is empty (use 'vcsim stage add <path>')")
			return nil
		}
		fmt.Fprintln(fOut, "\nChanges staged for commit (use 'vcsim stage toggle <path>'):")
		for _, e := range entries {
			marker := "[ ]"
			if e.Included {
				marker = "[x]"
			}
			fmt.Fprintf(fOut, "  %s %-30s (%s)\n", marker, e.Path, e.Kind)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(statusCmd)
}
