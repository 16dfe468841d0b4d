package jsonwire

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// zstdEncoder is shared across calls; EncodeAll is safe for concurrent
// use and allocates nothing per call beyond the destination buffer.
var zstdEncoder *zstd.Encoder

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil)
	if err != nil {
		panic("jsonwire: zstd encoder initialization failed: " + err.Error())
	}
}

// MarshalCompressed encodes v to JSON and wraps the result in a single
// zstd frame. Error semantics match Marshal: on any encode failure no
// output is produced.
func MarshalCompressed(v any, opts Options) ([]byte, error) {
	buf, err := Marshal(v, opts)
	if err != nil {
		return nil, err
	}
	return zstdEncoder.EncodeAll(buf, make([]byte, 0, len(buf)/2+64)), nil
}

// NewFrameWriter returns a zstd frame writer over w for streaming
// sinks. The caller must Close it to flush the frame footer.
func NewFrameWriter(w io.Writer) (*zstd.Encoder, error) {
	return zstd.NewWriter(w)
}
