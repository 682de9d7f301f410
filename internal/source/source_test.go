package source_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/recast/internal/source"
	"github.com/aretw0/recast/pkg/domain"
)

func captures() *domain.CaptureSet {
	set := domain.NewCaptureSet(3)
	set.Add("code", "200", true)
	set.Add("path", "/health", true)
	set.Add("note", "", false)
	return set
}

func TestSource_RawDistinguishesAbsent(t *testing.T) {
	src := source.New(captures())

	assert.Equal(t, []string{"code", "path", "note"}, src.Names())

	raw, ok := src.Raw("code")
	assert.True(t, ok)
	assert.Equal(t, "200", raw)

	_, ok = src.Raw("note")
	assert.False(t, ok)

	_, ok = src.Raw("nope")
	assert.False(t, ok)
}

func TestSource_Materialize(t *testing.T) {
	src := source.New(captures())

	rec, err := src.Materialize([]domain.FieldSpec{
		{Name: "code", Kind: domain.KindInt},
		{Name: "path", Kind: domain.KindString},
		{Name: "note", Kind: domain.KindString, Optional: true},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.Record{"code": 200, "path": "/health"}, rec)
	_, present := rec["note"]
	assert.False(t, present, "absent optional fields stay out of the record")
}

func TestSource_MaterializeCaseInsensitiveLookup(t *testing.T) {
	src := source.New(captures())

	rec, err := src.Materialize([]domain.FieldSpec{
		{Name: "Code", Kind: domain.KindInt},
	})
	require.NoError(t, err)
	assert.Equal(t, 200, rec["Code"])
}

func TestSource_MaterializeAbortsOnFirstError(t *testing.T) {
	src := source.New(captures())

	rec, err := src.Materialize([]domain.FieldSpec{
		{Name: "path", Kind: domain.KindInt}, // "/health" is not an int
		{Name: "note", Kind: domain.KindString}, // would also fail, but later
	})
	assert.Nil(t, rec, "no partial record on failure")
	require.Error(t, err)

	var fieldErr *domain.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "path", fieldErr.Field, "the first failing field in spec order wins")
	assert.True(t, errors.Is(err, domain.ErrTypeMismatch))
}

func TestSource_MaterializeMissingRequired(t *testing.T) {
	src := source.New(captures())

	_, err := src.Materialize([]domain.FieldSpec{
		{Name: "note", Kind: domain.KindString},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMissingField))
}

func TestSource_MaterializeEmptyStringIsPresent(t *testing.T) {
	set := domain.NewCaptureSet(1)
	set.Add("tag", "", true)
	src := source.New(set)

	rec, err := src.Materialize([]domain.FieldSpec{
		{Name: "tag", Kind: domain.KindString, Optional: true},
	})
	require.NoError(t, err)

	v, present := rec["tag"]
	assert.True(t, present, "an empty capture is a value, not an absence")
	assert.Equal(t, "", v)
}
