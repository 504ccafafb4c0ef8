package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Lists the staged entries of the checked out branch
var stageListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the staging area",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRepository()
		if err != nil {
			return err
		}

		entries := r.StageList(r.CurrentBranch())
		if len(entries) == 0 {
			fmt.Fprintln(fOut, "Staging area is empty")
			return nil
		}
		selected := 0
		for _, e := range entries {
			marker := "[ ]"
			if e.Included {
				marker = "[x]"
				selected++
			}
			fmt.Fprintf(fOut, "  %s %-30s (%s)\n", marker, e.Path, e.Kind)
		}
		fmt.Fprintln(fOut, numFormat.Sprintf("%d staged, %d selected for commit", len(entries), selected))
		return nil
	},
}

func init() {
	stageCmd.AddCommand(stageListCmd)
}
