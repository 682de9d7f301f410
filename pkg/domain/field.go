package domain

// FieldSpec describes one target field of a decode: the capture group that
// feeds it, the scalar kind it is coerced into, and whether the group is
// allowed to sit out of the match.
//
// Specs are produced by the schema layer (tag derivation or an explicit
// builder) and handed to the engine unchanged for the lifetime of the
// program.
type FieldSpec struct {
	// Name is the capture group name this field reads from. Lookup is
	// exact-match first, with a unique case-insensitive fallback so that an
	// untagged Go field `Code` finds the group `code`.
	Name string

	// Kind is the scalar type the raw capture text is coerced into.
	Kind Kind

	// Optional marks fields that tolerate a non-participating capture
	// group. An absent capture for an optional field yields no value; for a
	// required field it is a decode error.
	Optional bool
}

// Record is the dynamically shaped result of a field-descriptor decode:
// coerced scalar values keyed by field name. Fields whose optional capture
// group did not participate are not present in the map, which keeps the
// absent/empty distinction visible to consumers.
type Record map[string]any
