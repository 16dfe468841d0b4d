package jsonwire

// Options is a call-scoped flag bitmask. It is read-only for the
// duration of one encode call and carries no other state; concurrent
// calls with different option sets share nothing.
type Options uint64

const (
	// OptSerializeUUID enables encoding of uuid.UUID values as their
	// canonical hyphenated lowercase hex string. Without this flag a
	// uuid.UUID value is rejected as an unsupported type.
	OptSerializeUUID Options = 1 << iota

	// OptSortKeys emits object keys in ascending byte order.
	OptSortKeys

	// OptAppendNewline appends a single '\n' after the document.
	OptAppendNewline

	// OptUTC converts time.Time values to UTC before rendering.
	OptUTC

	// OptOmitMicroseconds truncates time.Time values to whole seconds.
	OptOmitMicroseconds

	// OptStrictInteger rejects integers whose magnitude exceeds
	// 2^53−1, the largest range round-trippable through an IEEE 754
	// double.
	OptStrictInteger
)

// Has reports whether every flag in mask is set.
func (o Options) Has(mask Options) bool {
	return o&mask == mask
}
