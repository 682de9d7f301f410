// Package schema turns target shapes into the field specs the engine
// consumes.
//
// Specs can be derived from a struct type's fields and `recast` tags, or
// registered explicitly through a Builder when patterns are data rather than
// code. Both paths produce the same (pattern, field list) input, so the
// engine never knows which one a descriptor came from.
package schema

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/aretw0/recast/pkg/domain"
)

// TagName is the struct tag read during derivation: `recast:"group"` binds a
// field to a capture group, `recast:"-"` skips it.
const TagName = "recast"

var kindsByReflect = map[reflect.Kind]domain.Kind{
	reflect.String:  domain.KindString,
	reflect.Bool:    domain.KindBool,
	reflect.Int:     domain.KindInt,
	reflect.Int8:    domain.KindInt8,
	reflect.Int16:   domain.KindInt16,
	reflect.Int32:   domain.KindInt32,
	reflect.Int64:   domain.KindInt64,
	reflect.Uint:    domain.KindUint,
	reflect.Uint8:   domain.KindUint8,
	reflect.Uint16:  domain.KindUint16,
	reflect.Uint32:  domain.KindUint32,
	reflect.Uint64:  domain.KindUint64,
	reflect.Float32: domain.KindFloat32,
	reflect.Float64: domain.KindFloat64,
}

// fieldCache memoizes derivation per struct type, mirroring the
// one-descriptor-per-type lifetime of the engine's pattern cache.
var fieldCache sync.Map // reflect.Type -> []domain.FieldSpec

// FieldsOf derives field specs from a struct type (or pointer to one).
//
// Exported fields map to capture groups named by their `recast` tag, or by
// the field name itself when untagged (capture lookup is case-insensitive,
// so `Code` finds `(?P<code>...)`). Pointer fields are optional-of-elem.
// Unexported fields and fields tagged "-" are skipped. Any field outside the
// closed scalar kind set is an error: compound shapes are not decodable
// targets.
//
// Derivation is deterministic per type and the result is cached; callers
// must treat the returned slice as read-only.
func FieldsOf(t reflect.Type) ([]domain.FieldSpec, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("target must be a struct, got %s", t)
	}

	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]domain.FieldSpec), nil
	}

	fields := make([]domain.FieldSpec, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		name := sf.Name
		if tag, ok := sf.Tag.Lookup(TagName); ok {
			tag = strings.TrimSpace(tag)
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}

		ft := sf.Type
		optional := false
		if ft.Kind() == reflect.Pointer {
			optional = true
			ft = ft.Elem()
		}

		kind, ok := kindsByReflect[ft.Kind()]
		if !ok {
			return nil, fmt.Errorf("field %s.%s: unsupported type %s", t.Name(), sf.Name, sf.Type)
		}

		fields = append(fields, domain.FieldSpec{Name: name, Kind: kind, Optional: optional})
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("target %s has no decodable fields", t)
	}

	cached, _ := fieldCache.LoadOrStore(t, fields)
	return cached.([]domain.FieldSpec), nil
}
