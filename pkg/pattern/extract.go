package pattern

import (
	"regexp"

	"github.com/aretw0/recast/pkg/domain"
)

// Extract runs a compiled pattern against input and returns the captures of
// the leftmost match. Matching follows standard regex search semantics: the
// pattern anchors itself with ^ and $ if full-string matching is wanted.
//
// Every named group declared in the pattern gets an entry, in declaration
// order. Submatch indices, not texts, decide presence: a group that matched
// zero characters is present with "", while a group in an alternation branch
// that sat out of the match is absent. Unnamed groups are not surfaced.
//
// A failed match returns a *domain.NoMatchError.
func Extract(re *regexp.Regexp, input string) (*domain.CaptureSet, error) {
	idx := re.FindStringSubmatchIndex(input)
	if idx == nil {
		return nil, &domain.NoMatchError{Pattern: re.String(), Input: input}
	}

	names := re.SubexpNames()
	set := domain.NewCaptureSet(len(names))
	for i, name := range names {
		if i == 0 || name == "" {
			continue
		}
		start, end := idx[2*i], idx[2*i+1]
		if start < 0 {
			set.Add(name, "", false)
			continue
		}
		set.Add(name, input[start:end], true)
	}
	return set, nil
}
