// Package coerce holds the scalar coercion rules: the policy for turning a
// raw captured substring into a value of a field's declared kind.
//
// Coercion is pure and total over the closed kind set: the same
// (raw, kind, optional) triple always yields the same outcome, and no rule
// consults anything but its arguments.
package coerce

import (
	"strconv"

	"github.com/aretw0/recast/pkg/domain"
)

// Scalar coerces one captured value against its field spec.
//
// An absent capture (present == false) yields (nil, nil) for an optional
// field and a missing-field error otherwise. A present capture is parsed by
// kind:
//
//   - string: the raw text verbatim, no trimming
//   - bool: exactly the literals "true" or "false", case-sensitive
//   - int/uint kinds: base-10 with the kind's bit size
//   - float kinds: the strconv floating grammar
//
// The whole substring must parse; trailing garbage is a type mismatch. The
// returned value has the exact Go type named by the kind, so the assembly
// layer never needs lossy conversions.
func Scalar(raw string, present bool, spec domain.FieldSpec) (any, error) {
	if !present {
		if spec.Optional {
			return nil, nil
		}
		return nil, domain.NewMissingField(spec.Name, spec.Kind)
	}

	switch spec.Kind {
	case domain.KindString:
		return raw, nil

	case domain.KindBool:
		switch raw {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, domain.NewTypeMismatch(spec.Name, spec.Kind, raw)

	case domain.KindInt, domain.KindInt8, domain.KindInt16, domain.KindInt32, domain.KindInt64:
		v, err := strconv.ParseInt(raw, 10, spec.Kind.BitSize())
		if err != nil {
			return nil, domain.NewTypeMismatch(spec.Name, spec.Kind, raw)
		}
		switch spec.Kind {
		case domain.KindInt:
			return int(v), nil
		case domain.KindInt8:
			return int8(v), nil
		case domain.KindInt16:
			return int16(v), nil
		case domain.KindInt32:
			return int32(v), nil
		default:
			return v, nil
		}

	case domain.KindUint, domain.KindUint8, domain.KindUint16, domain.KindUint32, domain.KindUint64:
		v, err := strconv.ParseUint(raw, 10, spec.Kind.BitSize())
		if err != nil {
			return nil, domain.NewTypeMismatch(spec.Name, spec.Kind, raw)
		}
		switch spec.Kind {
		case domain.KindUint:
			return uint(v), nil
		case domain.KindUint8:
			return uint8(v), nil
		case domain.KindUint16:
			return uint16(v), nil
		case domain.KindUint32:
			return uint32(v), nil
		default:
			return v, nil
		}

	case domain.KindFloat32, domain.KindFloat64:
		v, err := strconv.ParseFloat(raw, spec.Kind.BitSize())
		if err != nil {
			return nil, domain.NewTypeMismatch(spec.Name, spec.Kind, raw)
		}
		if spec.Kind == domain.KindFloat32 {
			return float32(v), nil
		}
		return v, nil
	}

	// Unreachable while the kind set stays closed.
	return nil, domain.NewTypeMismatch(spec.Name, spec.Kind, raw)
}
