// Package jsonwire implements a canonical JSON encoding engine for a
// fixed set of native Go values.
//
// jsonwire is designed to be:
//   - Predictable: dispatch is by exact concrete type, never by
//     interface satisfaction or reflection over arbitrary structs
//   - Deterministic: optional sorted keys and a canonical hash make
//     equal logical data produce identical bytes
//   - Opt-in for extended types: UUID encoding is gated behind an
//     explicit option flag rather than being silently enabled
//   - Allocation-light: values append directly into one output buffer
//
// # Dispatch Model
//
// The encoder accepts nil, bool, string, all fixed-width integer types,
// float32/float64, time.Time, uuid.UUID, []any, []string, and
// map[string]any. Matching is exact: a defined type whose underlying
// type is one of these never matches, so wrapper types cannot be
// encoded by accident. Any value outside the set produces an
// *UnsupportedTypeError.
//
// # Options
//
// Every encode call carries an immutable Options bitmask:
//
//	out, err := jsonwire.Marshal(v, jsonwire.OptSerializeUUID|jsonwire.OptSortKeys)
//
// OptSerializeUUID enables encoding of uuid.UUID values to their
// canonical hyphenated lowercase form. Without it, a uuid.UUID value is
// an unsupported type like any other.
//
// # Sibling Encodings
//
// The same value set and gating rules drive two more wire forms:
//
//	bin, err := jsonwire.MarshalCBOR(v, opts)       // RFC 8949 deterministic CBOR
//	z, err := jsonwire.MarshalCompressed(v, opts)   // zstd-framed JSON
//
// # Canonical Hash
//
// CanonicalHash returns a stable BLAKE3 hex digest of the sorted-key
// JSON encoding, usable as a content address for logical values:
//
//	sum, err := jsonwire.CanonicalHash(v, 0)
package jsonwire
