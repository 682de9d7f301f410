package domain

import "fmt"

// Kind identifies the scalar type a captured substring is coerced into.
// The set is closed: coercion is a total function over these values, and
// anything outside it (structs, slices, maps) is rejected at schema
// derivation time rather than at decode time.
type Kind uint8

const (
	KindString Kind = iota
	KindBool
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
)

var kindNames = map[Kind]string{
	KindString:  "string",
	KindBool:    "bool",
	KindInt:     "int",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint:    "uint",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// BitSize reports the bit size strconv expects for the numeric kinds.
// It is 0 for string and bool.
func (k Kind) BitSize() int {
	switch k {
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt64, KindUint64, KindFloat64:
		return 64
	case KindInt, KindUint:
		// strconv treats 0 as the native int size.
		return 0
	default:
		return 0
	}
}

// ParseKind resolves a type name as written in pattern definition files.
// "float" is accepted as an alias for float64; the empty string defaults
// to string, matching the "untyped capture" case.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "", "string":
		return KindString, nil
	case "float":
		return KindFloat64, nil
	}
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return KindString, fmt.Errorf("unknown field type %q", name)
}
