package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var stageAddDeleted bool

// Stages one or more paths on the checked out branch
var stageAddCmd = &cobra.Command{
	Use:   "add [path...]",
	Short: "Adds paths to the staging area",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("No paths specified")
		}

		r, err := loadRepository()
		if err != nil {
			return err
		}
		for _, p := range args {
			if stageAddDeleted {
				e := r.StageDelete(p)
				fmt.Fprintf(fOut, "Staged '%s' (%s) on '%s'\n", p, e.Kind, e.Branch)
				continue
			}
			e := r.StageAdd(p)
			fmt.Fprintf(fOut, "Staged '%s' (%s) on '%s'\n", p, e.Kind, e.Branch)
		}
		return saveRepository(r)
	},
}

func init() {
	stageCmd.AddCommand(stageAddCmd)
	stageAddCmd.Flags().BoolVar(&stageAddDeleted, "deleted", false,
		"Stage the paths as deletions instead of additions")
}
