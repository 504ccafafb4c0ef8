package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Answers whether a collaborator holds a permission
var roleCheckCmd = &cobra.Command{
	Use:   "check [email] [permission]",
	Short: "Checks whether a collaborator holds a permission",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return errors.New("An email address and a permission are required")
		}

		r, err := loadRepository()
		if err != nil {
			return err
		}
		if r.CheckPermission(args[0], args[1]) {
			fmt.Fprintf(fOut, "Yes, '%s' holds the '%s' permission\n", args[0], args[1])
		} else {
			fmt.Fprintf(fOut, "No, '%s' does not hold the '%s' permission\n", args[0], args[1])
		}
		return nil
	},
}

func init() {
	roleCmd.AddCommand(roleCheckCmd)
}
