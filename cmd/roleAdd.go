package cmd

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Grants a role with a permission subset to a collaborator email
var roleAddCmd = &cobra.Command{
	Use:   "add [email] [role] [permission...]",
	Short: "Assigns a role and permissions to a collaborator",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return errors.New("An email address and a role name are required")
		}

		email, role := args[0], strings.ToLower(args[1])
		perms := parsePerms(args[2:])

		r, err := loadRepository()
		if err != nil {
			return err
		}
		if err = r.GrantRole(email, role, perms); err != nil {
			return err
		}
		if err = saveRepository(r); err != nil {
			return err
		}
		if len(perms) == 0 {
			fmt.Fprintf(fOut, "Role '%s' assigned to '%s' (no permissions)\n", role, email)
		} else {
			fmt.Fprintf(fOut, "Role '%s' assigned to '%s', permissions: %s\n", role, email,
				strings.Join(perms, ", "))
		}
		return nil
	},
}

func init() {
	roleCmd.AddCommand(roleAddCmd)
}
