package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vcsim/vcsim/vcs"
)

// Lists the branches of the active repository
var branchListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the branches",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRepository()
		if err != nil {
			return err
		}

		head := r.CurrentBranch()
		for _, b := range r.ListBranches() {
			marker := "  "
			if b.Name == head {
				marker = "* "
			}
			tip := "(empty)"
			if b.Commit != "" {
				tip = fmt.Sprintf("(%s)", vcs.ShortID(b.Commit))
			}
			fmt.Fprintf(fOut, "%s%-25s %s\n", marker, b.Name, tip)
		}
		return nil
	},
}

func init() {
	branchCmd.AddCommand(branchListCmd)
}
