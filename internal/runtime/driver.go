// Package runtime implements the decode driver: the linear pipeline that
// turns (pattern, field specs, input) into a typed record or a classified
// error.
package runtime

import (
	"fmt"
	"log/slog"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/recast/internal/source"
	"github.com/aretw0/recast/pkg/domain"
	"github.com/aretw0/recast/pkg/pattern"
)

// TagName is the struct tag the assembly traversal reads. It matches the tag
// the schema layer derives field specs from, so a tagged struct names its
// capture groups exactly once.
const TagName = "recast"

// Driver orchestrates one decode: Compile, Extract, Coerce per field,
// Assemble. Every failure aborts the call with no partial result; nothing is
// retried internally. For a fixed (pattern, fields, input) triple the outcome
// is always identical — the compilation cache is the only ambient state and
// it does not affect observable results.
//
// A Driver is stateless apart from its cache and safe for concurrent use.
type Driver struct {
	cache  *pattern.Cache
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// NewDriver wires a driver to its pattern cache, logger, and hooks.
func NewDriver(cache *pattern.Cache, logger *slog.Logger, hooks domain.LifecycleHooks) *Driver {
	return &Driver{cache: cache, logger: logger, hooks: hooks}
}

// DecodeFields runs the pipeline and returns the coerced record keyed by
// field name. Field errors come back wrapped with the pattern and an input
// excerpt; the field name itself travels inside the *domain.FieldError.
func (d *Driver) DecodeFields(patternText string, fields []domain.FieldSpec, input string) (domain.Record, error) {
	re, hit, err := d.cache.CompileOrGet(patternText)
	if d.hooks.OnCompile != nil {
		d.hooks.OnCompile(&domain.CompileEvent{Pattern: patternText, CacheHit: hit, Err: err})
	}
	if err != nil {
		d.logger.Debug("pattern compile failed", "pattern", patternText, "error", err)
		return nil, err
	}

	caps, err := pattern.Extract(re, input)
	if err != nil {
		if d.hooks.OnNoMatch != nil {
			d.hooks.OnNoMatch(&domain.MatchEvent{Pattern: patternText, Input: domain.Excerpt(input)})
		}
		d.fireDecode(patternText, fields, err)
		d.logger.Debug("no match", "pattern", patternText, "input", domain.Excerpt(input))
		return nil, err
	}
	if d.hooks.OnMatch != nil {
		d.hooks.OnMatch(&domain.MatchEvent{Pattern: patternText, Input: domain.Excerpt(input), Matched: true})
	}

	rec, err := source.New(caps).Materialize(fields)
	if err != nil {
		err = fmt.Errorf("pattern %q, input %q: %w", patternText, domain.Excerpt(input), err)
		d.fireDecode(patternText, fields, err)
		d.logger.Debug("field coercion failed", "pattern", patternText, "error", err)
		return nil, err
	}

	d.fireDecode(patternText, fields, nil)
	return rec, nil
}

// Decode runs the pipeline and assembles the record into target, which must
// be a non-nil pointer to a struct. Assembly goes through the generic
// map-to-struct traversal with weak typing disabled: the record already holds
// exactly typed scalars, so the traversal only places values, it never
// reinterprets them.
func (d *Driver) Decode(patternText string, fields []domain.FieldSpec, input string, target any) error {
	rec, err := d.DecodeFields(patternText, fields, input)
	if err != nil {
		return err
	}
	return assemble(rec, target)
}

func (d *Driver) fireDecode(patternText string, fields []domain.FieldSpec, err error) {
	if d.hooks.OnDecode != nil {
		d.hooks.OnDecode(&domain.DecodeEvent{Pattern: patternText, Fields: len(fields), Err: err})
	}
}

func assemble(rec domain.Record, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: TagName,
	})
	if err != nil {
		return fmt.Errorf("assemble record: %w", err)
	}
	if err := dec.Decode(map[string]any(rec)); err != nil {
		return fmt.Errorf("assemble record: %w", err)
	}
	return nil
}
