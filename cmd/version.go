package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version number",
		Run: func(cmd *cobra.Command, args []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok {
				fmt.Println("linkrot (unknown version)")
				return
			}

			fmt.Println("linkrot", info.Main.Version)
			fmt.Println("- go/version:", info.GoVersion)
		},
	}
}
