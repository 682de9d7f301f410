package domain

import (
	"errors"
	"fmt"
)

// ErrNoMatch is reported when an input does not satisfy a pattern. It is the
// one recoverable failure class: line-oriented callers typically skip the
// input and move on.
var ErrNoMatch = errors.New("input does not match pattern")

// ErrMissingField is reported when a required field's capture group did not
// participate in the match.
var ErrMissingField = errors.New("required capture group did not participate in match")

// ErrTypeMismatch is reported when captured text cannot be coerced to the
// field's declared kind.
var ErrTypeMismatch = errors.New("captured text does not fit declared kind")

// excerptLimit bounds how much input text error messages carry.
const excerptLimit = 64

// Excerpt bounds s for inclusion in diagnostics.
func Excerpt(s string) string {
	if len(s) <= excerptLimit {
		return s
	}
	return s[:excerptLimit] + "..."
}

// CompileError wraps a pattern syntax failure. It is fatal for every future
// use of that pattern text: compilation is deterministic, so a retry fails
// identically and nothing is cached for the text.
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile pattern %q: %v", e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// NoMatchError reports that an input did not satisfy a pattern. It carries
// the pattern text and a bounded excerpt of the input for diagnostics.
type NoMatchError struct {
	Pattern string
	Input   string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("pattern %q: no match in %q", e.Pattern, Excerpt(e.Input))
}

func (e *NoMatchError) Unwrap() error {
	return ErrNoMatch
}

// FieldError reports a per-field coercion failure: either a required capture
// group that did not participate, or captured text that does not parse as the
// declared kind. Construct with NewMissingField or NewTypeMismatch.
type FieldError struct {
	// Field is the target field (and capture group) name.
	Field string
	// Kind is the declared scalar kind of the field.
	Kind Kind
	// Raw is the captured text that failed coercion. Empty for missing
	// fields, where no text was captured at all.
	Raw string

	reason error
}

// NewMissingField reports that the named required field had no participating
// capture group.
func NewMissingField(field string, kind Kind) *FieldError {
	return &FieldError{Field: field, Kind: kind, reason: ErrMissingField}
}

// NewTypeMismatch reports that raw could not be coerced to kind.
func NewTypeMismatch(field string, kind Kind, raw string) *FieldError {
	return &FieldError{Field: field, Kind: kind, Raw: raw, reason: ErrTypeMismatch}
}

// Missing reports whether the failure is a non-participating required group
// (as opposed to a type mismatch).
func (e *FieldError) Missing() bool {
	return errors.Is(e.reason, ErrMissingField)
}

func (e *FieldError) Error() string {
	if e.Missing() {
		return fmt.Sprintf("field %q: %v", e.Field, ErrMissingField)
	}
	return fmt.Sprintf("field %q: cannot parse %q as %s", e.Field, e.Raw, e.Kind)
}

func (e *FieldError) Unwrap() error {
	return e.reason
}
