package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vcsim/vcsim/vcs"
)

// Pops the head of the active queue for processing
var prNextCmd = &cobra.Command{
	Use:   "next",
	Short: "Takes the next pull request off the review queue",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRepository()
		if err != nil {
			return err
		}

		pr, err := r.PRNext()
		if errors.Is(err, vcs.ErrQueueEmpty) {
			// Not an error, there's just nothing waiting
			fmt.Fprintln(fOut, "The pull request queue is empty")
			return nil
		}
		if err != nil {
			return err
		}
		if err = saveRepository(r); err != nil {
			return err
		}
		fmt.Fprintf(fOut, "Next in queue:\n  %s\n", prLine(pr))
		return nil
	},
}

func init() {
	prCmd.AddCommand(prNextCmd)
}
