package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vcsim/vcsim/vcs"
)

// roleCmd is the parent for the role / permission subcommands
var roleCmd = &cobra.Command{
	Use:   "role",
	Short: "Manage roles and permissions",
	Long: "Manage roles and permissions.  Known roles: " +
		strings.Join(vcs.ValidRoles(), ", "),
}

func init() {
	RootCmd.AddCommand(roleCmd)
}

// parsePerms splits a comma or space separated permission list.
func parsePerms(args []string) []string {
	var perms []string
	for _, a := range args {
		for _, p := range strings.FieldsFunc(a, func(r rune) bool { return r == ',' || r == ' ' }) {
			if p != "" {
				perms = append(perms, p)
			}
		}
	}
	return perms
}
