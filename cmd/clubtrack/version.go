// ABOUTME: CLI version command.
// ABOUTME: Prints the build version without touching the store.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the clubtrack version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("clubtrack %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
