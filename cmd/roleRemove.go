package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Revokes a collaborator's role record
var roleRemoveCmd = &cobra.Command{
	Use:   "remove [email]",
	Short: "Removes a collaborator's role",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("An email address is required")
		}

		r, err := loadRepository()
		if err != nil {
			return err
		}
		if err = r.RevokeRole(args[0]); err != nil {
			return err
		}
		if err = saveRepository(r); err != nil {
			return err
		}
		fmt.Fprintf(fOut, "Role removed for '%s'\n", args[0])
		return nil
	},
}

func init() {
	roleCmd.AddCommand(roleRemoveCmd)
}
