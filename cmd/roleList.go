package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Lists every role grant, ordered by email
var roleListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists all role grants",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRepository()
		if err != nil {
			return err
		}

		grants := r.ListRoles()
		if len(grants) == 0 {
			fmt.Fprintln(fOut, "No roles assigned")
			return nil
		}
		fmt.Fprintf(fOut, "%-30s %-15s %s\n", "Email", "Role", "Permissions")
		for _, g := range grants {
			perms := strings.Join(g.Permissions, ", ")
			if perms == "" {
				perms = "none"
			}
			fmt.Fprintf(fOut, "%-30s %-15s %s\n", g.Email, g.Role, perms)
		}
		return nil
	},
}

func init() {
	roleCmd.AddCommand(roleListCmd)
}
