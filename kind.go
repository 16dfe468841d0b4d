package jsonwire

import (
	"time"

	"github.com/google/uuid"
)

// Kind identifies which encoding rule applies to a value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindInt
	KindUint
	KindFloat
	KindString
	KindTime
	KindUUID
	KindArray
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindTime:
		return "time"
	case KindUUID:
		return "uuid"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// ResolveKind classifies a value by its exact dynamic type against the
// active option set, answering "which rule would Marshal apply" without
// encoding anything. It is pure: no side effects, total over all
// inputs. A defined type whose underlying type is uuid.UUID does not
// match the uuid.UUID case, so wrapper types resolve to KindInvalid
// even with OptSerializeUUID set. With the flag unset, uuid.UUID
// itself resolves to KindInvalid: the capability is entirely opt-in
// per call.
//
// The encoder fuses this classification with dispatch in a single type
// switch; ResolveKind is the standalone form of the same rule set.
func ResolveKind(v any, opts Options) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case int, int8, int16, int32, int64:
		return KindInt
	case uint, uint8, uint16, uint32, uint64:
		return KindUint
	case float32, float64:
		return KindFloat
	case string:
		return KindString
	case time.Time:
		return KindTime
	case uuid.UUID:
		if opts.Has(OptSerializeUUID) {
			return KindUUID
		}
		return KindInvalid
	case []any, []string:
		return KindArray
	case map[string]any:
		return KindObject
	default:
		return KindInvalid
	}
}
