package pattern_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/recast/pkg/domain"
	"github.com/aretw0/recast/pkg/pattern"
)

func TestExtract_NoMatch(t *testing.T) {
	re := regexp.MustCompile(`(?P<foo>\d+)`)

	set, err := pattern.Extract(re, "no digits here")
	assert.Nil(t, set)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoMatch))

	var noMatch *domain.NoMatchError
	require.True(t, errors.As(err, &noMatch))
	assert.Equal(t, `(?P<foo>\d+)`, noMatch.Pattern)
	assert.Equal(t, "no digits here", noMatch.Input)
}

func TestExtract_DeclarationOrder(t *testing.T) {
	re := regexp.MustCompile(`(?P<foo>\d+)\s+(?P<bar>true|false)\s+(?P<baz>\S+)`)

	set, err := pattern.Extract(re, "1 true hello")
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar", "baz"}, set.Names())

	foo, ok := set.Get("foo")
	assert.True(t, ok)
	assert.Equal(t, "1", foo)
	bar, ok := set.Get("bar")
	assert.True(t, ok)
	assert.Equal(t, "true", bar)
	baz, ok := set.Get("baz")
	assert.True(t, ok)
	assert.Equal(t, "hello", baz)
}

func TestExtract_SearchSemantics(t *testing.T) {
	// Without anchors the pattern matches anywhere in the input.
	re := regexp.MustCompile(`(?P<code>\d{3})`)
	set, err := pattern.Extract(re, "GET /x -> 404 done")
	require.NoError(t, err)
	code, _ := set.Get("code")
	assert.Equal(t, "404", code)

	// Anchors supplied by the pattern itself are honored.
	anchored := regexp.MustCompile(`^(?P<code>\d{3})$`)
	_, err = pattern.Extract(anchored, "GET /x -> 404 done")
	assert.True(t, errors.Is(err, domain.ErrNoMatch))
}

func TestExtract_UnmatchedAlternationBranch(t *testing.T) {
	re := regexp.MustCompile(`(?P<foo>\d+)(?:\s+(?P<bar>\w+))?`)

	set, err := pattern.Extract(re, "42")
	require.NoError(t, err)

	foo, ok := set.Get("foo")
	assert.True(t, ok)
	assert.Equal(t, "42", foo)

	// bar is declared but did not participate: absent, not empty.
	_, ok = set.Get("bar")
	assert.False(t, ok)
	assert.Equal(t, []string{"foo", "bar"}, set.Names(), "absent groups keep their slot in declaration order")
}

func TestExtract_EmptyMatchIsPresent(t *testing.T) {
	re := regexp.MustCompile(`(?P<head>\w*):(?P<tail>\w*)`)

	set, err := pattern.Extract(re, ":x")
	require.NoError(t, err)

	head, ok := set.Get("head")
	assert.True(t, ok, "a zero-character match participates")
	assert.Equal(t, "", head)

	tail, ok := set.Get("tail")
	assert.True(t, ok)
	assert.Equal(t, "x", tail)
}

func TestExtract_SkipsUnnamedGroups(t *testing.T) {
	re := regexp.MustCompile(`(\d+)-(?P<name>\w+)`)

	set, err := pattern.Extract(re, "7-seven")
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, set.Names())
}
