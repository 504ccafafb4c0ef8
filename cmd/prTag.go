package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Appends a label to a pull request
var prTagCmd = &cobra.Command{
	Use:   "tag [id] [label]",
	Short: "Tags a pull request",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return errors.New("A pull request ID and a label are required")
		}
		id, err := prID(args[0])
		if err != nil {
			return err
		}
		if args[1] == "" {
			return errors.New("The label can't be empty")
		}

		r, err := loadRepository()
		if err != nil {
			return err
		}
		if err = r.PRTag(id, args[1]); err != nil {
			return err
		}
		if err = saveRepository(r); err != nil {
			return err
		}
		fmt.Fprintf(fOut, "Label '%s' added to pull request #%d\n", args[1], id)
		return nil
	},
}

func init() {
	prCmd.AddCommand(prTagCmd)
}
