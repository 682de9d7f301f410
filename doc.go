/*
Package recast decodes strings into typed records using regex named capture
groups.

It is for input that is loosely structured but patterned — log lines, CLI
output, ad-hoc formats — where a full parser is overkill and raw submatch
slices are too error-prone. You describe the line once, as a pattern with
named groups, and decode straight into a struct.

# Usage

Tag a struct with the capture group names and parse:

	type Entry struct {
		Foo int    `recast:"foo"`
		Bar bool   `recast:"bar"`
		Baz string `recast:"baz"`
	}

	entry, err := recast.Parse[Entry](`(?P<foo>\d+)\s+(?P<bar>true|false)\s+(?P<baz>\S+)`, "1 true hello")

Untagged exported fields work too: capture lookup is case-insensitive, so a
field Code finds the group (?P<code>...). Pointer fields are optional — if
their group sits in an alternation branch that did not participate in the
match, the pointer stays nil instead of failing the decode.

# Guarantees

  - Each distinct pattern text is compiled at most once per cache, no matter
    how many records are parsed with it, including under concurrency.
  - Decoding is all-or-nothing: on any failure no partial record is produced.
  - Errors are precise: a compile failure names the pattern, a no-match
    carries a bounded input excerpt, and a field failure names the field,
    its declared type, and the text that did not fit.
  - For a fixed (pattern, fields, input) triple the outcome is always the
    same.

# Dynamic shapes

When target shapes are data rather than Go types — a pattern file, a config
block — build a descriptor by hand and decode into a Record:

	desc, err := schema.NewBuilder(`(?P<code>\d{3})\s+(?P<path>\S+)`).
		Field("code", domain.KindInt).
		Field("path", domain.KindString).
		Build()
	rec, err := engine.DecodeDescriptor(desc, "404 /missing")

The pkg/patterns package loads such descriptors from YAML files, and Runner
drives a descriptor over a line stream.

# Engines

The package-level functions share one process-wide engine and pattern cache.
Hosts that want isolation (tests, multi-tenant pipelines) or observability
construct their own:

	eng := recast.New(
		recast.WithCache(pattern.NewCache()),
		recast.WithLogger(logger),
		recast.WithLifecycleHooks(metrics.Hooks()),
	)

Decoding is synchronous and engines are safe for concurrent use; the only
shared mutable state is the pattern cache.
*/
package recast
