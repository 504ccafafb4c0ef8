package cmd

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Changes a collaborator's role and adds permissions to the grant
var roleUpdateCmd = &cobra.Command{
	Use:   "update [email] [new role] [permission...]",
	Short: "Updates a collaborator's role, adding permissions",
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
		if err = r.UpdateRole(email, role, perms); err != nil {
			return err
		}
		if err = saveRepository(r); err != nil {
			return err
		}
		fmt.Fprintf(fOut, "Role of '%s' is now '%s'\n", email, role)
		return nil
	},
}

func init() {
	roleCmd.AddCommand(roleUpdateCmd)
}
