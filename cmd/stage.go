package cmd

import (
	"github.com/spf13/cobra"
)

// stageCmd is the parent for the staging area subcommands
var stageCmd = &cobra.Command{
	Use:   "stage",
	Short: "Manage the staging area of the checked out branch",
}

func init() {
	RootCmd.AddCommand(stageCmd)
}
