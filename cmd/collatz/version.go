package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/collatz"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of collatz",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "collatz version %s\n", strings.TrimSpace(collatz.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
