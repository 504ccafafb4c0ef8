package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Opens a pull request from one branch into another
var prCreateCmd = &cobra.Command{
	Use:   "create [source branch] [destination branch]",
	Short: "Creates a pull request",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return errors.New("Source and destination branch names are required")
		}

		_, email := identity()
		if email == "" {
			return errors.New("An email address is required, set it in the config file or with --email")
		}

		r, err := loadRepository()
		if err != nil {
			return err
		}
		pr, err := r.PRCreate(args[0], args[1], email)
		if err != nil {
			return err
		}
		if err = saveRepository(r); err != nil {
			return err
		}
		fmt.Fprintf(fOut, "Pull request #%d created: '%s' by %s\n", pr.ID, pr.Title, pr.Author)
		return nil
	},
}

func init() {
	prCmd.AddCommand(prCreateCmd)
}
