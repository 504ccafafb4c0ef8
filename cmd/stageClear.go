package cmd

import (
	"github.com/spf13/cobra"
)

// Empties the staging area of the checked out branch
var stageClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Removes every staged entry of the checked out branch",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRepository()
		if err != nil {
			return err
		}
		removed := r.StageClear(r.CurrentBranch())
		if err = saveRepository(r); err != nil {
			return err
		}
		numFormat.Fprintf(fOut, "Staging area cleared (%d entries removed)\n", removed)
		return nil
	},
}

func init() {
	stageCmd.AddCommand(stageClearCmd)
}
