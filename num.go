package jsonwire

import (
	"math"
	"strconv"
)

// maxSafeInteger is the largest integer magnitude a strict encode
// accepts, 2^53−1. 2^53 itself is excluded: it collides with 2^53+1
// after a round trip through an IEEE 754 double.
const maxSafeInteger = 1<<53 - 1

func (e *encoder) encodeInt(n int64) error {
	if e.opts.Has(OptStrictInteger) && (n > maxSafeInteger || n < -maxSafeInteger) {
		return ErrIntegerRange
	}
	e.buf = strconv.AppendInt(e.buf, n, 10)
	return nil
}

func (e *encoder) encodeUint(n uint64) error {
	if e.opts.Has(OptStrictInteger) && n > maxSafeInteger {
		return ErrIntegerRange
	}
	e.buf = strconv.AppendUint(e.buf, n, 10)
	return nil
}

// appendFloat renders a float with the shortest representation that
// round-trips at the given bit size. JSON has no non-finite literals;
// NaN and ±Inf render as null.
func appendFloat(dst []byte, f float64, bits int) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(dst, "null"...)
	}
	return strconv.AppendFloat(dst, f, 'g', -1, bits)
}
