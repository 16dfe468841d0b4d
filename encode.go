package jsonwire

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Marshal encodes v to a complete JSON document under the given
// options. It either returns the full byte sequence or an error; there
// is no partial output and no silent coercion of unrecognized types.
func Marshal(v any, opts Options) ([]byte, error) {
	return AppendMarshal(make([]byte, 0, 64), v, opts)
}

// AppendMarshal appends the JSON encoding of v to dst and returns the
// extended slice. On error the returned slice holds exactly the bytes
// dst held on entry; no truncated fragment is visible to the caller.
func AppendMarshal(dst []byte, v any, opts Options) ([]byte, error) {
	e := encoder{buf: dst, opts: opts}
	if err := e.encode(v); err != nil {
		return dst[:len(dst):len(dst)], err
	}
	if opts.Has(OptAppendNewline) {
		e.buf = append(e.buf, '\n')
	}
	return e.buf, nil
}

type encoder struct {
	buf  []byte
	opts Options
}

// encode dispatches on the exact dynamic type of v. The case arms are
// the complete set of recognized types; a defined type over one of
// them falls through to the default arm.
func (e *encoder) encode(v any) error {
	switch val := v.(type) {
	case nil:
		e.buf = append(e.buf, "null"...)
	case bool:
		if val {
			e.buf = append(e.buf, "true"...)
		} else {
			e.buf = append(e.buf, "false"...)
		}
	case string:
		e.buf = appendString(e.buf, val)
	case int:
		return e.encodeInt(int64(val))
	case int8:
		return e.encodeInt(int64(val))
	case int16:
		return e.encodeInt(int64(val))
	case int32:
		return e.encodeInt(int64(val))
	case int64:
		return e.encodeInt(val)
	case uint:
		return e.encodeUint(uint64(val))
	case uint8:
		return e.encodeUint(uint64(val))
	case uint16:
		return e.encodeUint(uint64(val))
	case uint32:
		return e.encodeUint(uint64(val))
	case uint64:
		return e.encodeUint(val)
	case float32:
		e.buf = appendFloat(e.buf, float64(val), 32)
	case float64:
		e.buf = appendFloat(e.buf, val, 64)
	case time.Time:
		e.buf = appendTime(e.buf, val, e.opts)
	case uuid.UUID:
		if !e.opts.Has(OptSerializeUUID) {
			return &UnsupportedTypeError{Value: v}
		}
		e.buf = appendUUID(e.buf, val)
	case []any:
		return e.encodeArray(val)
	case []string:
		e.buf = append(e.buf, '[')
		for i, s := range val {
			if i > 0 {
				e.buf = append(e.buf, ',')
			}
			e.buf = appendString(e.buf, s)
		}
		e.buf = append(e.buf, ']')
	case map[string]any:
		return e.encodeObject(val)
	default:
		return &UnsupportedTypeError{Value: v}
	}
	return nil
}

func (e *encoder) encodeArray(vals []any) error {
	e.buf = append(e.buf, '[')
	for i, elem := range vals {
		if i > 0 {
			e.buf = append(e.buf, ',')
		}
		if err := e.encode(elem); err != nil {
			return err
		}
	}
	e.buf = append(e.buf, ']')
	return nil
}

func (e *encoder) encodeObject(m map[string]any) error {
	e.buf = append(e.buf, '{')
	if e.opts.Has(OptSortKeys) {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for i, k := range keys {
			if i > 0 {
				e.buf = append(e.buf, ',')
			}
			e.buf = appendString(e.buf, k)
			e.buf = append(e.buf, ':')
			if err := e.encode(m[k]); err != nil {
				return err
			}
		}
	} else {
		first := true
		for k, val := range m {
			if !first {
				e.buf = append(e.buf, ',')
			}
			first = false
			e.buf = appendString(e.buf, k)
			e.buf = append(e.buf, ':')
			if err := e.encode(val); err != nil {
				return err
			}
		}
	}
	e.buf = append(e.buf, '}')
	return nil
}
