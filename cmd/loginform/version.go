package main

import (
	"fmt"

	"github.com/reglet-dev/loginform/internal/version"
	"github.com/spf13/cobra"
)

var versionShort bool

// versionCmd implements the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of loginform",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		info := version.Get()
		if versionShort {
			fmt.Fprintln(cmd.OutOrStdout(), info.String())
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "loginform version %s\n", info.Full())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
}
