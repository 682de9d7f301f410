package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/recast"
	"github.com/aretw0/recast/internal/logging"
	"github.com/aretw0/recast/pkg/domain"
	"github.com/aretw0/recast/pkg/patterns"
	"github.com/aretw0/recast/pkg/schema"
)

// runCmd reads lines from stdin (or a file) and writes one JSON object per
// matched line to stdout. Lines that do not match are skipped unless --strict.
var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Decode lines into JSON records",
	Long: `Reads text lines and emits one JSON object per matched line (NDJSON).

The pattern comes either from --pattern with repeated --field declarations,
or from a YAML pattern file:

  tail -f access.log | recast run --pattern '(?P<code>\d{3}) (?P<path>\S+)' \
      --field code:int --field path
  recast run --patterns web.yaml --name http_access access.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		desc, err := descriptorFromFlags(cmd)
		if err != nil {
			return err
		}
		if err := schema.Validate(desc); err != nil {
			return err
		}

		in := io.Reader(os.Stdin)
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		opts := []recast.Option{}
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			opts = append(opts, recast.WithLogger(logging.New(slog.LevelDebug)))
		}

		runner := recast.NewRunner(recast.New(opts...), desc)
		runner.Strict, _ = cmd.Flags().GetBool("strict")
		return runner.RunJSON(in, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("pattern", "p", "", "Regex with named capture groups")
	runCmd.Flags().StringArray("field", nil, "Field declaration name:type[:optional] (repeatable)")
	runCmd.Flags().String("patterns", "", "YAML pattern definition file")
	runCmd.Flags().String("name", "", "Pattern name inside the definition file")
	runCmd.Flags().Bool("strict", false, "Fail on lines that do not match instead of skipping them")
}

func descriptorFromFlags(cmd *cobra.Command) (schema.Descriptor, error) {
	patternText, _ := cmd.Flags().GetString("pattern")
	file, _ := cmd.Flags().GetString("patterns")

	switch {
	case patternText != "" && file != "":
		return schema.Descriptor{}, fmt.Errorf("--pattern and --patterns are mutually exclusive")

	case file != "":
		name, _ := cmd.Flags().GetString("name")
		f, err := patterns.LoadFile(file)
		if err != nil {
			return schema.Descriptor{}, err
		}
		if name == "" {
			if len(f.Patterns) == 1 {
				name = f.Patterns[0].Name
			} else {
				return schema.Descriptor{}, fmt.Errorf("--name is required, file defines %s", strings.Join(f.Names(), ", "))
			}
		}
		return f.Descriptor(name)

	case patternText != "":
		decls, _ := cmd.Flags().GetStringArray("field")
		return inlineDescriptor(patternText, decls)

	default:
		return schema.Descriptor{}, fmt.Errorf("either --pattern or --patterns is required")
	}
}

// inlineDescriptor builds a descriptor from --field declarations. Without
// any, every named group decodes as an optional string, same as an untyped
// pattern file entry.
func inlineDescriptor(patternText string, decls []string) (schema.Descriptor, error) {
	if len(decls) == 0 {
		def := patterns.Definition{Name: "inline", Regex: patternText}
		return def.Descriptor()
	}

	b := schema.NewBuilder(patternText)
	for _, decl := range decls {
		name, kind, optional, err := parseFieldDecl(decl)
		if err != nil {
			return schema.Descriptor{}, err
		}
		if optional {
			b.Optional(name, kind)
		} else {
			b.Field(name, kind)
		}
	}
	return b.Build()
}

func parseFieldDecl(decl string) (name string, kind domain.Kind, optional bool, err error) {
	parts := strings.Split(decl, ":")
	if len(parts) > 3 || parts[0] == "" {
		return "", 0, false, fmt.Errorf("invalid field declaration %q (want name:type[:optional])", decl)
	}
	name = parts[0]
	if len(parts) > 1 {
		if kind, err = domain.ParseKind(parts[1]); err != nil {
			return "", 0, false, fmt.Errorf("field %q: %w", name, err)
		}
	}
	if len(parts) == 3 {
		if parts[2] != "optional" {
			return "", 0, false, fmt.Errorf("field %q: unknown modifier %q", name, parts[2])
		}
		optional = true
	}
	return name, kind, optional, nil
}
