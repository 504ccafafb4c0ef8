package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Toggles whether a staged path is included in the next commit
var stageToggleCmd = &cobra.Command{
	Use:   "toggle [path]",
	Short: "Toggles a staged path in or out of the next commit",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("No path specified")
		}
		if len(args) > 1 {
			return errors.New("Only one path can be toggled at a time")
		}

		r, err := loadRepository()
		if err != nil {
			return err
		}
		included, err := r.StageToggle(args[0])
		if err != nil {
			return err
		}
		if err = saveRepository(r); err != nil {
			return err
		}
		fmt.Fprintf(fOut, "Selection of '%s' changed to: %v\n", args[0], included)
		return nil
	},
}

func init() {
	stageCmd.AddCommand(stageToggleCmd)
}
