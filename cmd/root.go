package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/message"
)

var (
	cfgFile             string
	nameFlag, emailFlag string
	numFormat           *message.Printer

	// All command output goes through fOut so tests can redirect it
	fOut io.Writer = os.Stdout
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "vcsim",
	Short: "Simulated version control with a code review workflow",
	Long: `vcsim simulates a version control repository with branches, staged
changes, content addressed commits, a pull request review queue and
role based permissions, all stored locally.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command & sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Add support for pretty printing numbers
	numFormat = message.NewPrinter(message.MatchLanguage("en"))

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.vcsim/config.toml)")
	RootCmd.PersistentFlags().StringVar(&nameFlag, "name", "",
		"Name to act as, overriding the config file")
	RootCmd.PersistentFlags().StringVar(&emailFlag, "email", "",
		"Email address to act as, overriding the config file")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in the home directory with name ".vcsim/config"
		home, err := homedir.Dir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".vcsim"))
			viper.SetConfigName("config")
		}
	}

	// The config file is optional, identity can always be given with flags
	_ = viper.ReadInConfig()
}

// identity resolves the acting user from the config file, letting command
// line flags override it.
func identity() (name, email string) {
	if u, ok := viper.Get("user.name").(string); ok {
		name = u
	}
	if v, ok := viper.Get("user.email").(string); ok {
		email = v
	}
	if nameFlag != "" {
		name = nameFlag
	}
	if emailFlag != "" {
		email = emailFlag
	}
	return name, email
}
