package cmd

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Shows the role and permissions of one collaborator
var roleShowCmd = &cobra.Command{
	Use:   "show [email]",
	Short: "Shows a collaborator's role and permissions",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("An email address is required")
		}

		r, err := loadRepository()
		if err != nil {
			return err
		}
		g, err := r.ShowRole(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(fOut, "Email: %s\n", g.Email)
		fmt.Fprintf(fOut, "Role: %s\n", g.Role)
		perms := strings.Join(g.Permissions, ", ")
		if perms == "" {
			perms = "none"
		}
		fmt.Fprintf(fOut, "Permissions: %s\n", perms)
		return nil
	},
}

func init() {
	roleCmd.AddCommand(roleShowCmd)
}
