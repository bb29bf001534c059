package cmd

import (
	"fmt"
	"os"

	"github.com/linkrot/linkrot/internal/pkg/config"
	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:          "linkrot",
	Short:        "Find broken links in websites, files, and local directories",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize config here, after cobra has parsed command line flags
		if err := config.InitConfig(); err != nil {
			fmt.Printf("error initializing config: %s\n", err)
			os.Exit(1)
		}

		cfg = config.Get()
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Run the root command
func Run() error {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().String("log-level", "info", "stdout log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json", false, "Output logs in JSON")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored log output")
	rootCmd.PersistentFlags().String("config-file", "", "config file (default is $HOME/linkrot-config.yaml)")

	// Bind flags to viper
	config.BindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd.Execute()
}
