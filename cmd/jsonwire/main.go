// Command jsonwire canonicalizes a JSON document from stdin: decodes
// it, re-encodes it with sorted keys, and writes the result to stdout.
// Alternative outputs: the BLAKE3 canonical hash, deterministic CBOR,
// or a zstd-framed copy of the canonical JSON.
package main

import (
	"fmt"
	"io"
	"os"

	gojson "github.com/goccy/go-json"
	flag "github.com/spf13/pflag"

	"github.com/solv-io/jsonwire"
)

func main() {
	newline := flag.Bool("newline", false, "append a trailing newline")
	hash := flag.Bool("hash", false, "print the canonical hash instead of the document")
	cborOut := flag.Bool("cbor", false, "emit deterministic CBOR instead of JSON")
	zstdOut := flag.Bool("zstd", false, "emit a zstd frame of the canonical JSON")
	flag.Parse()

	if err := run(*newline, *hash, *cborOut, *zstdOut); err != nil {
		fmt.Fprintln(os.Stderr, "jsonwire:", err)
		os.Exit(1)
	}
}

func run(newline, hash, cborOut, zstdOut bool) error {
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return err
	}

	var doc any
	if err := gojson.Unmarshal(input, &doc); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	opts := jsonwire.OptSortKeys
	if newline {
		opts |= jsonwire.OptAppendNewline
	}

	switch {
	case hash:
		sum, err := jsonwire.CanonicalHash(doc, opts)
		if err != nil {
			return err
		}
		_, err = fmt.Println(sum)
		return err
	case cborOut:
		out, err := jsonwire.MarshalCBOR(doc, opts)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	case zstdOut:
		out, err := jsonwire.MarshalCompressed(doc, opts)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	default:
		out, err := jsonwire.Marshal(doc, opts)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	}
}
