package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/recast/pkg/patterns"
	"github.com/aretw0/recast/pkg/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a pattern definition file for consistency",
	Long: `Compiles every pattern in the file and checks that each required field
has a capture group to read from, so misconfigurations surface before any
input does.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := patterns.LoadFile(args[0])
		if err != nil {
			return err
		}

		for _, def := range f.Patterns {
			desc, err := def.Descriptor()
			if err != nil {
				return err
			}
			if err := schema.Validate(desc); err != nil {
				return fmt.Errorf("pattern %q: %w", def.Name, err)
			}
		}

		fmt.Printf("%s: %d pattern(s) valid\n", args[0], len(f.Patterns))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
