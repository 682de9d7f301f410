package domain

import "strings"

type capture struct {
	text         string
	participated bool
}

// CaptureSet is the ordered mapping from capture group name to matched text
// produced by one extraction. Order is the pattern's declaration order and is
// kept for deterministic diagnostics; lookups are by name.
//
// A group can be present with text (including the empty string, when it
// matched zero characters) or absent, when it sits in an alternation branch
// that did not participate in the match. The two cases are never collapsed.
//
// A CaptureSet belongs to the decode call that created it and is not safe for
// concurrent use.
type CaptureSet struct {
	names  []string
	byName map[string]capture
}

// NewCaptureSet returns an empty set sized for n groups.
func NewCaptureSet(n int) *CaptureSet {
	return &CaptureSet{
		names:  make([]string, 0, n),
		byName: make(map[string]capture, n),
	}
}

// Add records a group in declaration order. Duplicate group names are legal
// in alternation branches; the first participating occurrence wins, so a
// later non-participating duplicate never shadows a real match.
func (s *CaptureSet) Add(name, text string, participated bool) {
	existing, seen := s.byName[name]
	if !seen {
		s.names = append(s.names, name)
	}
	if seen && existing.participated {
		return
	}
	s.byName[name] = capture{text: text, participated: participated}
}

// Names returns the group names in declaration order. The returned slice is
// owned by the set and must not be modified.
func (s *CaptureSet) Names() []string {
	return s.names
}

// Len reports the number of distinct group names.
func (s *CaptureSet) Len() int {
	return len(s.names)
}

// Get looks a group up by exact name. The boolean reports participation:
// ("", false) means the group exists but sat out of the match or the name is
// unknown, while ("", true) means it matched zero characters.
func (s *CaptureSet) Get(name string) (string, bool) {
	c := s.byName[name]
	return c.text, c.participated
}

// Find looks a group up by exact name, falling back to a unique
// case-insensitive match. The fallback mirrors the assembly layer's name
// matching so untagged struct fields resolve the same way in both places.
// The second result reports participation, the third whether any group with
// that name exists at all.
func (s *CaptureSet) Find(name string) (text string, participated, known bool) {
	if c, ok := s.byName[name]; ok {
		return c.text, c.participated, true
	}
	found := false
	for _, n := range s.names {
		if !strings.EqualFold(n, name) {
			continue
		}
		if found {
			// Ambiguous: two distinct groups fold to the same name.
			return "", false, false
		}
		c := s.byName[n]
		text, participated, known = c.text, c.participated, true
		found = true
	}
	return text, participated, known
}
