package jsonwire

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// appendUUID appends the quoted canonical form of u: a '"', 32
// lowercase hex digits in 8-4-4-4-12 groups separated by '-', and a
// closing '"'. Exactly 38 bytes for every input. The 128-bit magnitude
// is read once as two big-endian halves and walked nibble by nibble
// from most significant to least significant, so leading zero nibbles
// render as '0' rather than being dropped.
//
// The caller has already confirmed the value through ResolveKind; no
// type or range check happens here. A constructed uuid.UUID is in
// range by definition of its 16-byte representation.
func appendUUID(dst []byte, u uuid.UUID) []byte {
	hi := binary.BigEndian.Uint64(u[0:8])
	lo := binary.BigEndian.Uint64(u[8:16])

	dst = append(dst, '"')
	for i := 0; i < 32; i++ {
		switch i {
		case 8, 12, 16, 20:
			dst = append(dst, '-')
		}
		var nibble uint64
		if i < 16 {
			nibble = hi >> uint(60-4*i) & 0xf
		} else {
			nibble = lo >> uint(60-4*(i-16)) & 0xf
		}
		dst = append(dst, hexDigits[nibble])
	}
	return append(dst, '"')
}
