package cmd

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Rejects a pull request, closing it without a merge
var prRejectCmd = &cobra.Command{
	Use:   "reject [id] [reason...]",
	Short: "Rejects a pull request",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("A pull request ID is required")
		}
		id, err := prID(args[0])
		if err != nil {
			return err
		}

		_, email := identity()
		if email == "" {
			return errors.New("An email address is required, set it in the config file or with --email")
		}

		r, err := loadRepository()
		if err != nil {
			return err
		}
		pr, err := r.PRReject(id, email, strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		if err = saveRepository(r); err != nil {
			return err
		}
		fmt.Fprintf(fOut, "Pull request #%d rejected\n", pr.ID)
		return nil
	},
}

func init() {
	prCmd.AddCommand(prRejectCmd)
}
