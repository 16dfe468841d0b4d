// Package uuid128 builds uuid.UUID values from every representation a
// caller may hold: canonical, braced, or URN strings, big-endian or
// Microsoft mixed-endian bytes, the five-field RFC 4122 decomposition,
// and the raw 128-bit integer. All paths normalize to the same 16-byte
// value, so logically equal inputs are byte-identical whichever path
// constructed them. Range violations fail here, at construction; a
// value this package returns is always encodable.
package uuid128

import (
	"encoding/binary"
	"errors"
	"math/big"

	"github.com/google/uuid"
)

var (
	// ErrRange indicates an integer argument outside [0, 2^128−1],
	// or a node value outside 48 bits.
	ErrRange = errors.New("uuid128: integer out of range")

	// ErrLength indicates a byte slice that is not exactly 16 bytes.
	ErrLength = errors.New("uuid128: invalid length (expected 16 bytes)")
)

// maxNode is the largest 48-bit node value in the five-field form.
const maxNode = 1<<48 - 1

// Parse parses the canonical hyphenated form, with or without braces
// or the urn:uuid: prefix, and the bare 32-digit hex form.
func Parse(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// FromBytes builds a UUID from 16 big-endian bytes.
func FromBytes(b []byte) (uuid.UUID, error) {
	if len(b) != 16 {
		return uuid.Nil, ErrLength
	}
	return uuid.FromBytes(b)
}

// FromBytesLE builds a UUID from the Microsoft mixed-endian byte
// layout: the first three field groups are little-endian, the final
// eight bytes are in order.
func FromBytesLE(b []byte) (uuid.UUID, error) {
	if len(b) != 16 {
		return uuid.Nil, ErrLength
	}
	var u uuid.UUID
	u[0], u[1], u[2], u[3] = b[3], b[2], b[1], b[0]
	u[4], u[5] = b[5], b[4]
	u[6], u[7] = b[7], b[6]
	copy(u[8:], b[8:])
	return u, nil
}

// FromFields builds a UUID from the five-field decomposition of
// RFC 4122 §4.1.2. The node argument must fit in 48 bits.
func FromFields(timeLow uint32, timeMid, timeHiAndVersion uint16, clockSeqHiAndReserved, clockSeqLow byte, node uint64) (uuid.UUID, error) {
	if node > maxNode {
		return uuid.Nil, ErrRange
	}
	var u uuid.UUID
	binary.BigEndian.PutUint32(u[0:4], timeLow)
	binary.BigEndian.PutUint16(u[4:6], timeMid)
	binary.BigEndian.PutUint16(u[6:8], timeHiAndVersion)
	u[8] = clockSeqHiAndReserved
	u[9] = clockSeqLow
	u[10] = byte(node >> 40)
	u[11] = byte(node >> 32)
	u[12] = byte(node >> 24)
	u[13] = byte(node >> 16)
	u[14] = byte(node >> 8)
	u[15] = byte(node)
	return u, nil
}

// FromInt builds a UUID from its 128-bit integer magnitude. Negative
// values and values at or above 2^128 return ErrRange.
func FromInt(n *big.Int) (uuid.UUID, error) {
	if n.Sign() < 0 || n.BitLen() > 128 {
		return uuid.Nil, ErrRange
	}
	var u uuid.UUID
	n.FillBytes(u[:])
	return u, nil
}

// FromUint64Pair builds a UUID from the high and low halves of its
// 128-bit magnitude. Exact-width, so it cannot fail.
func FromUint64Pair(hi, lo uint64) uuid.UUID {
	var u uuid.UUID
	binary.BigEndian.PutUint64(u[0:8], hi)
	binary.BigEndian.PutUint64(u[8:16], lo)
	return u
}

// Int returns the 128-bit integer magnitude of u.
func Int(u uuid.UUID) *big.Int {
	return new(big.Int).SetBytes(u[:])
}

// Uint64Pair returns the high and low halves of u's magnitude.
func Uint64Pair(u uuid.UUID) (hi, lo uint64) {
	return binary.BigEndian.Uint64(u[0:8]), binary.BigEndian.Uint64(u[8:16])
}
