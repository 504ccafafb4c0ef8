package cmd

import (
	"github.com/spf13/cobra"
)

// branchCmd is the parent for the branch subcommands
var branchCmd = &cobra.Command{
	Use:   "branch",
	Short: "Create, remove, and list branches",
}

func init() {
	RootCmd.AddCommand(branchCmd)
}
