package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "recast",
	Short: "Recast decodes patterned text lines into typed records",
	Long: `Recast matches lines against regex named capture groups and emits
typed records, one JSON object per matched line.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log decode diagnostics to stderr")
}
