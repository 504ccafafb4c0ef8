package cmd

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Adds a review comment to a pull request, moving it into en_revision
var prReviewCmd = &cobra.Command{
	Use:   "review [id] [comment]",
	Short: "Reviews a pull request",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return errors.New("A pull request ID and a comment are required")
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
		pr, err := r.PRReview(id, email, strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		if err = saveRepository(r); err != nil {
			return err
		}
		fmt.Fprintf(fOut, "Comment added to pull request #%d (state: %s)\n", pr.ID, pr.State)
		return nil
	},
}

func init() {
	prCmd.AddCommand(prReviewCmd)
}
