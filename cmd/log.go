package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logBranch string
var logAll bool

// Displays the commit history of a branch, newest first
var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Displays the history for a branch",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRepository()
		if err != nil {
			return err
		}

		branch := logBranch
		if branch == "" {
			branch = r.CurrentBranch()
		}
		if logAll {
			branch = ""
		}

		it, err := r.Log(branch)
		if err != nil {
			return err
		}
		if branch == "" {
			fmt.Fprintf(fOut, "History for all branches:\n\n")
		} else {
			fmt.Fprintf(fOut, "Branch \"%s\" history:\n\n", branch)
		}
		shown := 0
		for {
			c, ok := it.Next()
			if !ok {
				break
			}
			fmt.Fprint(fOut, createCommitText(c))
			fmt.Fprintln(fOut)
			shown++
		}
		if shown == 0 {
			fmt.Fprintln(fOut, "No commits yet")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(logCmd)
	logCmd.Flags().StringVar(&logBranch, "branch", "", "Branch to show the history of")
	logCmd.Flags().BoolVar(&logAll, "all", false, "Show commits from every branch")
}
