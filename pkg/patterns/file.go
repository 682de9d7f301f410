// Package patterns loads pattern definition files: YAML documents declaring
// named, reusable patterns with typed field lists.
//
// Definition files let hosts treat patterns as data — a log-parsing CLI, a
// pipeline config — instead of compiling shapes into Go types:
//
//	version: 1
//	patterns:
//	  - name: http_access
//	    regex: '(?P<code>\d{3})\s+(?P<path>\S+)'
//	    fields:
//	      - name: code
//	        type: int
//	      - name: path
//	      - name: note
//	        type: string
//	        optional: true
//
// A definition without a fields list decodes every named group as an
// optional string.
package patterns

import (
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/recast/pkg/domain"
	"github.com/aretw0/recast/pkg/schema"
)

// FormatVersion is the only definition file format understood today.
const FormatVersion = 1

// File is a parsed pattern definition file.
type File struct {
	Version  int          `yaml:"version"`
	Patterns []Definition `yaml:"patterns"`
}

// Definition is one named pattern with its typed fields.
type Definition struct {
	Name   string     `yaml:"name"`
	Regex  string     `yaml:"regex"`
	Fields []FieldDef `yaml:"fields"`
}

// FieldDef declares one field of a definition. Type names follow
// domain.ParseKind; an empty type means string.
type FieldDef struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Optional bool   `yaml:"optional"`
}

// Load parses a definition file. Unknown keys, an unsupported version,
// unnamed or duplicate patterns, and unknown field types are errors, so a
// typo fails at load time rather than decoding every line to garbage.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse pattern file: %w", err)
	}
	if f.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported pattern file version %d (want %d)", f.Version, FormatVersion)
	}
	if len(f.Patterns) == 0 {
		return nil, fmt.Errorf("pattern file declares no patterns")
	}

	seen := make(map[string]bool, len(f.Patterns))
	for _, def := range f.Patterns {
		if def.Name == "" {
			return nil, fmt.Errorf("pattern with regex %q has no name", def.Regex)
		}
		if seen[def.Name] {
			return nil, fmt.Errorf("duplicate pattern name %q", def.Name)
		}
		seen[def.Name] = true
		if def.Regex == "" {
			return nil, fmt.Errorf("pattern %q has no regex", def.Name)
		}
		for _, fd := range def.Fields {
			if fd.Name == "" {
				return nil, fmt.Errorf("pattern %q: field with no name", def.Name)
			}
			if _, err := domain.ParseKind(fd.Type); err != nil {
				return nil, fmt.Errorf("pattern %q, field %q: %w", def.Name, fd.Name, err)
			}
		}
	}
	return &f, nil
}

// LoadFile reads and parses the definition file at path.
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Names lists the defined pattern names in file order.
func (f *File) Names() []string {
	names := make([]string, len(f.Patterns))
	for i, def := range f.Patterns {
		names[i] = def.Name
	}
	return names
}

// Descriptor resolves a named definition into an engine descriptor.
func (f *File) Descriptor(name string) (schema.Descriptor, error) {
	for _, def := range f.Patterns {
		if def.Name == name {
			return def.Descriptor()
		}
	}
	return schema.Descriptor{}, fmt.Errorf("pattern %q not defined", name)
}

// Descriptor converts the definition into an engine descriptor. Without an
// explicit fields list, every named group in the regex becomes an optional
// string field.
func (d Definition) Descriptor() (schema.Descriptor, error) {
	if len(d.Fields) == 0 {
		return d.untypedDescriptor()
	}

	b := schema.NewBuilder(d.Regex)
	for _, fd := range d.Fields {
		kind, err := domain.ParseKind(fd.Type)
		if err != nil {
			return schema.Descriptor{}, fmt.Errorf("pattern %q, field %q: %w", d.Name, fd.Name, err)
		}
		if fd.Optional {
			b.Optional(fd.Name, kind)
		} else {
			b.Field(fd.Name, kind)
		}
	}
	desc, err := b.Build()
	if err != nil {
		return schema.Descriptor{}, fmt.Errorf("pattern %q: %w", d.Name, err)
	}
	return desc, nil
}

func (d Definition) untypedDescriptor() (schema.Descriptor, error) {
	re, err := regexp.Compile(d.Regex)
	if err != nil {
		return schema.Descriptor{}, &domain.CompileError{Pattern: d.Regex, Err: err}
	}

	b := schema.NewBuilder(d.Regex)
	for _, g := range re.SubexpNames() {
		if g == "" {
			continue
		}
		b.Optional(g, domain.KindString)
	}
	desc, err := b.Build()
	if err != nil {
		return schema.Descriptor{}, fmt.Errorf("pattern %q has no named capture groups", d.Name)
	}
	return desc, nil
}
