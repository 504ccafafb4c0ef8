package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Lists the active queue then the closed archive
var prListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists pull requests, active queue first",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRepository()
		if err != nil {
			return err
		}

		active, closed := r.PRList()
		fmt.Fprintln(fOut, "Active pull requests:")
		if len(active) == 0 {
			fmt.Fprintln(fOut, "  (none)")
		}
		for _, pr := range active {
			fmt.Fprintf(fOut, "  %s\n", prLine(pr))
		}
		fmt.Fprintln(fOut, "\nClosed pull requests:")
		if len(closed) == 0 {
			fmt.Fprintln(fOut, "  (none)")
		}
		for _, pr := range closed {
			fmt.Fprintf(fOut, "  %s\n", prLine(pr))
		}
		return nil
	},
}

func init() {
	prCmd.AddCommand(prListCmd)
}
