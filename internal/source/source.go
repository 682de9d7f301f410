// Package source adapts a capture set to the shape the generic assembly
// traversal understands: an ordered, self-describing map of scalars.
//
// The adapter surfaces raw strings only; interpreting them against declared
// kinds belongs to the coercion rules. That split is what keeps matching
// logic independent of target types: the extractor can feed any shape
// without knowing types exist, and the coercion rules never learn regex
// exists.
package source

import (
	"github.com/aretw0/recast/internal/coerce"
	"github.com/aretw0/recast/pkg/domain"
)

// Source is a read-only view over one decode call's captures.
type Source struct {
	caps *domain.CaptureSet
}

// New wraps a capture set. The source borrows the set; both belong to the
// originating decode call.
func New(caps *domain.CaptureSet) *Source {
	return &Source{caps: caps}
}

// Names returns the available field names in capture declaration order.
func (s *Source) Names() []string {
	return s.caps.Names()
}

// Raw returns the uninterpreted text for a field. Absent (the group did not
// participate, or no such group exists) and present-but-empty are distinct:
// ("", false) versus ("", true).
func (s *Source) Raw(name string) (string, bool) {
	text, participated, _ := s.caps.Find(name)
	return text, participated
}

// Materialize drives the field specs through coercion, in spec order, and
// returns the coerced record. The first field failure aborts with that
// field's error; no partial record is returned.
//
// Optional fields whose group did not participate are left out of the record
// entirely, so the assembly traversal leaves their targets untouched.
func (s *Source) Materialize(fields []domain.FieldSpec) (domain.Record, error) {
	rec := make(domain.Record, len(fields))
	for _, f := range fields {
		raw, present := s.Raw(f.Name)
		v, err := coerce.Scalar(raw, present, f)
		if err != nil {
			return nil, err
		}
		if !present && f.Optional {
			continue
		}
		rec[f.Name] = v
	}
	return rec, nil
}
