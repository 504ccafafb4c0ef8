package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const VERSION = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version number of vcsim",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(fOut, "vcsim version %s\n", VERSION)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
