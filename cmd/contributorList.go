package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Lists the collaborator registry alphabetically
var contributorListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the contributors",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRepository()
		if err != nil {
			return err
		}

		list := r.ListContributors()
		if len(list) == 0 {
			fmt.Fprintln(fOut, "No contributors")
			return nil
		}
		fmt.Fprintf(fOut, "%-30s %-20s\n", "Name", "Role")
		for _, c := range list {
			fmt.Fprintf(fOut, "%-30s %-20s\n", c.Name, c.Role)
		}
		numFormat.Fprintf(fOut, "\n%d contributors\n", len(list))
		return nil
	},
}

func init() {
	contributorCmd.AddCommand(contributorListCmd)
}
