package jsonwire

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// CanonicalHash returns a lowercase hex BLAKE3-256 digest of the
// canonical JSON encoding of v. Key order is always sorted regardless
// of opts, so two logically equal values hash identically; the
// remaining flags (UUID gating, time normalization) still apply.
func CanonicalHash(v any, opts Options) (string, error) {
	buf, err := Marshal(v, (opts|OptSortKeys)&^OptAppendNewline)
	if err != nil {
		return "", err
	}
	sum := blake3.Sum256(buf)
	return hex.EncodeToString(sum[:]), nil
}
