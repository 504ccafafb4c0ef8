package cmd

import (
	"github.com/spf13/cobra"
)

// Empties the active queue, leaving the closed archive untouched
var prClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clears the active pull request queue",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRepository()
		if err != nil {
			return err
		}
		removed := r.PRClear()
		if err = saveRepository(r); err != nil {
			return err
		}
		numFormat.Fprintf(fOut, "Active queue cleared (%d pull requests removed)\n", removed)
		return nil
	},
}

func init() {
	prCmd.AddCommand(prClearCmd)
}
