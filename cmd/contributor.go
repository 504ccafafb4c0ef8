package cmd

import (
	"github.com/spf13/cobra"
)

// contributorCmd is the parent for the collaborator registry subcommands
var contributorCmd = &cobra.Command{
	Use:   "contributor",
	Short: "Manage the collaborator registry",
}

func init() {
	RootCmd.AddCommand(contributorCmd)
}
