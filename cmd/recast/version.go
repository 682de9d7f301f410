package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/recast"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of recast",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("recast version %s\n", recast.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
