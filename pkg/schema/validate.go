package schema

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aretw0/recast/pkg/domain"
)

// Validate checks a descriptor for the misconfigurations that otherwise only
// surface once input arrives: a pattern that does not compile, or a required
// field with no capture group to read from. Run it at startup, after loading
// descriptors from configuration.
//
// Group resolution uses the same rule as decoding: exact name first, then a
// unique case-insensitive match. Optional fields without a group are allowed —
// they decode to no value on every input, which is legal, if rarely useful.
func Validate(d Descriptor) error {
	re, err := regexp.Compile(d.Pattern)
	if err != nil {
		return &domain.CompileError{Pattern: d.Pattern, Err: err}
	}

	groups := re.SubexpNames()
	for _, f := range d.Fields {
		if f.Optional {
			continue
		}
		if !groupExists(groups, f.Name) {
			return fmt.Errorf("pattern %q: required field %q has no capture group", d.Pattern, f.Name)
		}
	}
	return nil
}

func groupExists(groups []string, name string) bool {
	for _, g := range groups {
		if g == name {
			return true
		}
	}
	matches := 0
	for _, g := range groups {
		if g != "" && strings.EqualFold(g, name) {
			matches++
		}
	}
	return matches == 1
}
