package jsonwire

import (
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

// cborMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer
// encoding, no indefinite-length items. Same logical data always
// produces identical bytes.
var cborMode cbor.EncMode

func init() {
	var err error
	cborMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("jsonwire: CBOR encoder initialization failed: " + err.Error())
	}
}

// MarshalCBOR encodes v to deterministic CBOR under the same type set
// and option gating as Marshal. Recognized UUID values encode as their
// 36-character canonical text string; an ungated uuid.UUID is an
// *UnsupportedTypeError exactly as in the JSON path.
func MarshalCBOR(v any, opts Options) ([]byte, error) {
	norm, err := normalizeValue(v, opts)
	if err != nil {
		return nil, err
	}
	return cborMode.Marshal(norm)
}

// normalizeValue walks v with the same exact-type dispatch as the JSON
// encoder and returns a tree the CBOR encoder accepts directly. The
// recognizer rules are shared: anything Marshal rejects, this rejects.
func normalizeValue(v any, opts Options) (any, error) {
	switch val := v.(type) {
	case nil, bool, string:
		return val, nil
	case int8, int16, int32, uint8, uint16, uint32:
		return val, nil
	case int:
		return normalizeInt64(int64(val), opts)
	case int64:
		return normalizeInt64(val, opts)
	case uint:
		return normalizeUint64(uint64(val), opts)
	case uint64:
		return normalizeUint64(val, opts)
	case float32, float64:
		return val, nil
	case time.Time:
		if opts.Has(OptUTC) {
			val = val.UTC()
		}
		if opts.Has(OptOmitMicroseconds) {
			val = val.Truncate(time.Second)
		}
		return val, nil
	case uuid.UUID:
		if !opts.Has(OptSerializeUUID) {
			return nil, &UnsupportedTypeError{Value: v}
		}
		quoted := appendUUID(make([]byte, 0, 38), val)
		return string(quoted[1 : len(quoted)-1]), nil
	case []string:
		return val, nil
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			norm, err := normalizeValue(elem, opts)
			if err != nil {
				return nil, err
			}
			out[i] = norm
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			norm, err := normalizeValue(elem, opts)
			if err != nil {
				return nil, err
			}
			out[k] = norm
		}
		return out, nil
	default:
		return nil, &UnsupportedTypeError{Value: v}
	}
}

func normalizeInt64(n int64, opts Options) (any, error) {
	if opts.Has(OptStrictInteger) && (n > maxSafeInteger || n < -maxSafeInteger) {
		return nil, ErrIntegerRange
	}
	return n, nil
}

func normalizeUint64(n uint64, opts Options) (any, error) {
	if opts.Has(OptStrictInteger) && n > maxSafeInteger {
		return nil, ErrIntegerRange
	}
	return n, nil
}
