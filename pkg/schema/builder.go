package schema

import (
	"fmt"

	"github.com/aretw0/recast/pkg/domain"
)

// Descriptor pairs a pattern with the ordered field specs decoded from it.
// It is the unit the engine, the runner, and pattern definition files all
// exchange.
type Descriptor struct {
	Pattern string
	Fields  []domain.FieldSpec
}

// Builder registers fields for a pattern by hand. It exists for hosts whose
// shapes are not Go structs: configuration-driven pipelines, code
// generators, tests.
//
//	desc, err := schema.NewBuilder(`(?P<code>\d+)\s+(?P<path>\S+)`).
//		Field("code", domain.KindInt).
//		Field("path", domain.KindString).
//		Optional("note", domain.KindString).
//		Build()
type Builder struct {
	pattern string
	fields  []domain.FieldSpec
}

// NewBuilder starts a descriptor for the given pattern text.
func NewBuilder(pattern string) *Builder {
	return &Builder{pattern: pattern}
}

// Field registers a required field.
func (b *Builder) Field(name string, kind domain.Kind) *Builder {
	b.fields = append(b.fields, domain.FieldSpec{Name: name, Kind: kind})
	return b
}

// Optional registers a field whose capture group may sit out of the match.
func (b *Builder) Optional(name string, kind domain.Kind) *Builder {
	b.fields = append(b.fields, domain.FieldSpec{Name: name, Kind: kind, Optional: true})
	return b
}

// Build finalizes the descriptor. Registering no fields or the same name
// twice is an error.
func (b *Builder) Build() (Descriptor, error) {
	if len(b.fields) == 0 {
		return Descriptor{}, fmt.Errorf("descriptor for pattern %q has no fields", b.pattern)
	}
	seen := make(map[string]bool, len(b.fields))
	for _, f := range b.fields {
		if seen[f.Name] {
			return Descriptor{}, fmt.Errorf("duplicate field %q in descriptor for pattern %q", f.Name, b.pattern)
		}
		seen[f.Name] = true
	}
	return Descriptor{Pattern: b.pattern, Fields: b.fields}, nil
}
